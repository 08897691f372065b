// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

import "math"

// Character class sizes used to approximate the search space.
const (
	lowercaseSize = 26
	uppercaseSize = 26
	digitSize     = 10

	// DefaultSpecialCharsetSize approximates the printable symbol set. It is
	// not derived from the symbols actually used.
	DefaultSpecialCharsetSize = 32

	// patternPenaltyBits is subtracted once per detected pattern.
	patternPenaltyBits = 5
)

// CharsetSize returns the combined size of the classes present in c.
func CharsetSize(c Composition, specialSize int) int {
	size := 0
	if c.Lowercase {
		size += lowercaseSize
	}
	if c.Uppercase {
		size += uppercaseSize
	}
	if c.Digit {
		size += digitSize
	}
	if c.Special {
		size += specialSize
	}
	return size
}

// Estimate returns the approximate entropy in bits of a password with the
// given length and composition, reduced by a fixed amount per detected
// pattern. The result is never negative.
func Estimate(length int, c Composition, patternCount, specialSize int) float64 {
	charset := CharsetSize(c, specialSize)
	if charset <= 0 || length <= 0 {
		return 0
	}
	bits := float64(length)*math.Log2(float64(charset)) - float64(patternCount*patternPenaltyBits)
	return math.Max(0, bits)
}
