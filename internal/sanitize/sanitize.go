// Package sanitize prepares user-supplied names for terminal output. Names
// are echoed back verbatim in score lines, so control characters, bidi
// overrides and runaway lengths are stripped before printing. Scoring
// always works on the raw input, never on the sanitized form.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDisplayLength is the maximum number of runes shown for a name.
const MaxDisplayLength = 60

// Ellipsis marks a truncated name.
const Ellipsis = "…"

// reWhitespace matches runs of ASCII whitespace and Unicode separators.
var reWhitespace = regexp.MustCompile(`[\s\p{Z}]+`)

// DisplayName returns raw in a form safe to print on one terminal line.
//
// The pipeline runs in this order:
//  1. Drop invalid UTF-8
//  2. Strip control and format characters (C0/C1 controls, bidi overrides, zero-width)
//  3. Collapse whitespace runs to a single space
//  4. Trim leading/trailing whitespace
//  5. Truncate to MaxDisplayLength runes
func DisplayName(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ToValidUTF8(raw, "")

	// Tabs and newlines become spaces here so that step 3 can collapse them.
	s = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)

	s = reWhitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if utf8.RuneCountInString(s) > MaxDisplayLength {
		runes := []rune(s)
		s = strings.TrimSpace(string(runes[:MaxDisplayLength])) + Ellipsis
	}

	return s
}
