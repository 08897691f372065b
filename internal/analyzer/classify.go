// Copyright (c) 2026 Passaudit Team
// Passaudit - password security analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package analyzer

// Classify reports which of the four character classes occur in password.
// Only ASCII letters and digits are recognised; every other character,
// including non-ASCII letters, counts as special.
func Classify(password string) Composition {
	var c Composition
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Special = true
		}
	}
	return c
}
