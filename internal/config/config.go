// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Passaudit settings from defaults, configuration
// files, PASSAUDIT_* environment variables and command-line flags, and
// writes default configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer" yaml:"analyzer"`
	Corpus   CorpusConfig   `mapstructure:"corpus" yaml:"corpus"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AnalyzerConfig tunes the analysis engine. Zero values fall back to the
// engine defaults.
type AnalyzerConfig struct {
	SpecialCharsetSize int `mapstructure:"special_charset_size" yaml:"special_charset_size"`
	MaxLength          int `mapstructure:"max_length" yaml:"max_length"`
	Workers            int `mapstructure:"workers" yaml:"workers"`
}

type CorpusConfig struct {
	Files       []string `mapstructure:"files" yaml:"files"`
	VariantTopN int      `mapstructure:"variant_top_n" yaml:"variant_top_n"`
}

type ReportConfig struct {
	MaskKeep int    `mapstructure:"mask_keep" yaml:"mask_keep"`
	MaskChar string `mapstructure:"mask_char" yaml:"mask_char"`
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                      "en",
		"log.level":                     "warn",
		"analyzer.special_charset_size": 32,
		"analyzer.max_length":           1024,
		"analyzer.workers":              0,
		"corpus.files":                  []string{},
		"corpus.variant_top_n":          20,
		"report.mask_keep":              3,
		"report.mask_char":              "*",
	}
}

// Default returns the configuration described by Defaults.
func Default() Config {
	return Config{
		Language: "en",
		Log:      LogConfig{Level: "warn"},
		Analyzer: AnalyzerConfig{SpecialCharsetSize: 32, MaxLength: 1024},
		Corpus:   CorpusConfig{Files: []string{}, VariantTopN: 20},
		Report:   ReportConfig{MaskKeep: 3, MaskChar: "*"},
	}
}

// FlagAliases maps command-line flag names to the configuration keys they
// set. Flags named exactly like a key are bound without an alias.
var FlagAliases = map[string]string{
	"language":             "language",
	"log-level":            "log.level",
	"special-charset-size": "analyzer.special_charset_size",
	"max-length":           "analyzer.max_length",
	"workers":              "analyzer.workers",
	"corpus-file":          "corpus.files",
	"variant-top-n":        "corpus.variant_top_n",
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passaudit")
		default:
			configDir = "/etc/passaudit"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passaudit")
	}

	return filepath.Join(configDir, "passaudit.yaml"), nil
}

// ConfigPath returns where WriteConfigFile stores the user or system file.
func ConfigPath(system bool) (string, error) {
	return getConfigPath(system)
}

// LoadConfig resolves configuration into T. Precedence, highest first:
// changed flags, PASSAUDIT_* environment variables, the config file, then
// defaults. An explicit path replaces the search for passaudit.yaml.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passaudit")
	v.SetConfigType("yaml")

	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, the defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, "", err
		}
	}

	v.SetEnvPrefix("passaudit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
		for name, key := range FlagAliases {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, "", err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", err
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
