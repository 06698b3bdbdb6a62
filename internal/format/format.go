// Package format holds the name and date-time conversions shared by the
// catalog, appointment, and recommendation services.
//
// Names live in two shapes: the internal slug form ("stone_massage") used as
// a map key, and the display form ("Stone Massage") shown to clients. Both
// conversions are total functions; garbage in yields an empty string, never
// an error.
package format

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TimestampLayout is the canonical layout for persisted timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date portion used for display grouping.
const DateLayout = "2006-01-02"

// flexibleLayouts are tried in order by ParseFlexibleDateTime. The ISO form
// wins; day-first forms are fallbacks only, so "01-12-2025" is December 1st.
var flexibleLayouts = []string{
	"2006-01-02 15:04",
	"02-01-2006 15:04",
	"02/01/2006 15:04",
}

// Slug converts display or free text to the internal slug form:
// lower-case with spaces replaced by underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// DisplayName converts an internal slug back to human-readable form:
// underscores replaced by spaces, each word title-cased.
func DisplayName(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		// Decode the first rune rather than slicing the first byte so
		// multi-byte letters survive intact.
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// ParseFlexibleDateTime parses minute-resolution date-time text in any of the
// accepted layouts, in local time with seconds zeroed. The second return
// value reports whether any layout matched.
func ParseFlexibleDateTime(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range flexibleLayouts {
		if ts, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a timestamp in the canonical persisted layout.
func FormatTimestamp(ts time.Time) string {
	return ts.Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp in the canonical persisted layout.
func ParseTimestamp(text string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, text, time.Local)
}
