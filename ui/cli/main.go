// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go defines the root command, global flags, service setup and build
// version resolution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/passaudit/buildvars"
	"github.com/toeirei/passaudit/internal/analyzer"
	"github.com/toeirei/passaudit/internal/config"
	"github.com/toeirei/passaudit/internal/corpus"
	"github.com/toeirei/passaudit/internal/i18n"
	"github.com/toeirei/passaudit/internal/logging"
	"github.com/toeirei/passaudit/internal/report"
	"github.com/toeirei/passaudit/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var (
	appConfig   config.Config
	appAnalyzer *analyzer.Analyzer
	appMasker   = report.DefaultMasker
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	var used string
	appConfig, used, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("ignoring log level %q: %v", appConfig.Log.Level, err)
	}
	if verbose {
		logging.SetDebug(true)
	}
	if used != "" {
		logging.Debugf("using config file %s", used)
	}

	i18n.Init(appConfig.Language)

	c, err := corpus.Load(appConfig.Corpus.Files, corpus.WithVariantTopN(appConfig.Corpus.VariantTopN))
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("error.corpus"), err)
	}
	logging.Debugf("corpus ready with %d entries", c.Len())

	appAnalyzer = analyzer.New(c,
		analyzer.WithSpecialCharsetSize(appConfig.Analyzer.SpecialCharsetSize),
		analyzer.WithMaxLength(appConfig.Analyzer.MaxLength),
		analyzer.WithWorkers(appConfig.Analyzer.Workers),
	)
	appMasker = report.NewMasker(appConfig.Report.MaskKeep, appConfig.Report.MaskChar)
	return nil
}

// errVersionShown stops a subcommand after -V printed the version.
var errVersionShown = errors.New("version shown")

// Execute runs the CLI entrypoint. The main package should call this
// function, print the returned error and handle process exit.
func Execute() error {
	err := NewRootCmd().Execute()
	if errors.Is(err, errVersionShown) {
		return nil
	}
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns a fresh command tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passaudit",
		Short: "Passaudit analyzes password strength and explains how to improve it.",
		Long: `Passaudit scores passwords from 0 to 100 by looking at length,
character variety, entropy, predictable patterns and membership in a corpus
of commonly used passwords. It lists the issues it finds together with
concrete recommendations.

Running without a subcommand will launch the interactive analyzer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				return errVersionShown
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, _ := resolveBuildVersion(nil)
			return runTUI(appAnalyzer, tui.Options{Version: v})
		},
	}
	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	verbose, showVersionFlag, cfgFile = false, false, ""
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	pf.StringVar(&cfgFile, "config", "", "config file")
	pf.String("language", "en", `Interface language ("en", "de")`)
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringSlice("corpus-file", nil, "Additional wordlist of common passwords (repeatable, .zst supported)")
	pf.Int("variant-top-n", corpus.DefaultVariantTopN, "Number of corpus entries expanded with common variants")
	pf.Int("special-charset-size", analyzer.DefaultSpecialCharsetSize, "Charset size credited for special characters")
	pf.Int("max-length", analyzer.DefaultMaxLength, "Maximum accepted password length in characters")
	pf.Int("workers", 0, "Batch worker goroutines (0 uses all CPUs)")

	cmd.AddCommand(
		newCheckCmd(),
		newBatchCmd(),
		newReportCmd(),
		newTipsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// compositeVersion joins version, commit and build date for display.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion attempts to determine a useful version string. It
// prefers ldflags-injected values, then module build info, then VCS settings.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

const modulePath = "github.com/toeirei/passaudit"
