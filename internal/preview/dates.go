// Package preview derives the render-ready view-model for a CV. The same
// derived data feeds the JSON preview endpoint and the PDF exporter, so both
// always show identical content.
package preview

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocale is used when the requested locale is not supported.
const DefaultLocale = "en"

// rangeSeparator joins the two sides of a date range.
const rangeSeparator = " — "

// shortMonths holds abbreviated month names per supported locale.
var shortMonths = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"de": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	"fr": {"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	"pl": {"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
	"uk": {"січ", "лют", "бер", "кві", "тра", "чер", "лип", "сер", "вер", "жов", "лис", "гру"},
}

// dateLayouts are tried in order when parsing incoming date strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// ResolveLocale probes whether the locale is supported and falls back to the
// default when it is not. Region subtags are ignored ("en-GB" -> "en").
func ResolveLocale(locale string) string {
	base := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	if _, ok := shortMonths[base]; ok {
		return base
	}
	return DefaultLocale
}

// parseDate parses an ISO-ish date string.
func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", raw)
}

// FormatDate produces a short localized "Mon YYYY" label. Empty input yields
// an empty string; unparseable input passes through unchanged.
func FormatDate(raw, locale string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	t, err := parseDate(raw)
	if err != nil {
		return raw
	}
	months := shortMonths[ResolveLocale(locale)]
	return fmt.Sprintf("%s %d", months[int(t.Month())-1], t.Year())
}

// FormatDateRange formats both sides of a range independently and joins them
// with an em-dash separator. A missing start is replaced by unknownLabel; a
// missing or unparseable end is replaced by presentLabel, since an open end
// means the engagement is still running.
func FormatDateRange(start string, end *string, unknownLabel, presentLabel, locale string) string {
	left := FormatDate(start, locale)
	if left == "" {
		left = unknownLabel
	}

	right := presentLabel
	if end != nil && strings.TrimSpace(*end) != "" {
		if _, err := parseDate(*end); err == nil {
			right = FormatDate(*end, locale)
		}
	}

	return left + rangeSeparator + right
}
