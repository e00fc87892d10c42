package dataprocessing

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// dateLayouts are tried in order when parsing release dates. The dataset
// mostly carries ISO dates; the remaining layouts cover the spellings seen in
// older exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2 January 2006",
	"January 2, 2006",
}

// parseDecimal coerces numeric-looking text to a float. Surrounding
// whitespace and thousands separators are tolerated. Failure yields nil,
// never an error.
func parseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseMinutes coerces a runtime cell to whole minutes.
func parseMinutes(s string) *int {
	v := parseDecimal(s)
	if v == nil {
		return nil
	}
	mins := int(math.Round(*v))
	return &mins
}

// parseDate coerces a release-date cell. Failure yields nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// deriveDateParts returns the year and the full English weekday name for a
// parsed release date. Both are nil when the date is nil.
func deriveDateParts(t *time.Time) (*int, *string) {
	if t == nil {
		return nil, nil
	}
	year := t.Year()
	weekday := t.Weekday().String()
	return &year, &weekday
}

// cleanVerdict strips all colon characters and surrounding whitespace.
// An empty cell stays null.
func cleanVerdict(s string) *string {
	s = strings.TrimSpace(strings.ReplaceAll(s, ":", ""))
	if s == "" {
		return nil
	}
	return &s
}

// cleanOTTPlatform capitalizes (first rune upper, rest lower) and trims.
// An empty cell stays null.
func cleanOTTPlatform(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	out := string(runes)
	return &out
}
