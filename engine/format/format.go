// Package format maps coded enumeration values from workflow definitions to
// display text. Every mapping is total: unknown codes fall through to a
// generic humanizer instead of erroring.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// -----------------------------------------------------------------------------
// Known code tables
// -----------------------------------------------------------------------------

var constraints = map[string]string{
	"EQ":         "is equal to",
	"NE":         "is not equal to",
	"LT":         "is less than",
	"GT":         "is more than",
	"LTE":        "is less than or equal to",
	"GTE":        "is more than or equal to",
	"ANY":        "is any of",
	"IN":         "is any of",
	"NIN":        "is none of",
	"NOT_IN":     "is none of",
	"IS_SET":     "is set",
	"IS_NOT_SET": "is not set",
}

var severities = map[string]string{
	"SOFT": "Soft exception",
	"HARD": "Hard exception",
	"NONE": "No exception",
}

var selectors = map[string]string{
	"CONSTANT":   "constant value",
	"PARAMETER":  "another parameter",
	"PROPERTY":   "object property",
	"VARIABLE":   "variable",
	"EXPRESSION": "expression",
	"NONE":       "none",
}

var dateUnits = map[string]string{
	"MINUTES": "minutes from now",
	"HOURS":   "hours from now",
	"DAYS":    "days from today",
	"WEEKS":   "weeks from today",
	"MONTHS":  "months from today",
	"YEARS":   "years from today",
}

// -----------------------------------------------------------------------------
// Formatters
// -----------------------------------------------------------------------------

// Constraint renders a comparison or containment operator code.
func Constraint(code string) string {
	return lookup(constraints, code)
}

// Severity renders a validation exception-severity code.
func Severity(code string) string {
	return lookup(severities, code)
}

// Selector renders a value-selector code.
func Selector(code string) string {
	return lookup(selectors, code)
}

// DateUnit renders a relative date-unit code.
func DateUnit(code string) string {
	return lookup(dateUnits, code)
}

func lookup(table map[string]string, code string) string {
	if text, ok := table[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return text
	}
	return Humanize(code)
}

// Humanize turns an arbitrary code into prose: underscores become spaces, a
// space is inserted before a capital that follows a lowercase letter, the
// result is case-folded, whitespace-collapsed, and re-capitalized on the
// first letter only. Applying it to already-humanized text is a no-op.
func Humanize(code string) string {
	var b strings.Builder
	b.Grow(len(code) + 4)
	var prev rune
	for _, r := range code {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}
	words := strings.Fields(b.String())
	if len(words) == 0 {
		return ""
	}
	out := strings.Join(words, " ")
	first, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToUpper(first)) + out[size:]
}
