// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"strings"

	"golang.org/x/text/cases"
)

// CleanName trims surrounding whitespace, keeping the original casing.
func CleanName(raw string) string {
	return strings.TrimSpace(raw)
}

// NameKey returns the comparison key for a participant or item name:
// trimmed and Unicode case-folded.
func NameKey(raw string) string {
	// cases.Caser is stateful, so build one per call
	return cases.Fold().String(CleanName(raw))
}
