package domain

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when reading a date field. Data files mix
// ISO dates written by this program with day-first dates typed by hand.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
}

// ParseDate reads a date field best-effort. The second return value is false
// when the text does not match any known layout; callers that need a date
// (the schedule view) skip such records instead of failing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate writes a date back in the canonical ISO form. A zero time
// becomes the empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ParseDecimal sanitizes a numeric field before arithmetic: currency symbols
// and spaces are stripped, a comma decimal separator is accepted. Anything
// that still fails to parse counts as zero — financial totals built on such
// data understate rather than abort (see the warning logged by the store on
// load).
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt is ParseDecimal truncated to an integer.
func ParseInt(s string) int {
	return int(ParseDecimal(s))
}

// FormatDecimal writes a number with no trailing zeros ("6", "6.5").
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func FormatInt(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}

// SplitLots turns the comma-joined lot-tag column into a slice, dropping
// empty entries.
func SplitLots(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	lots := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lots = append(lots, p)
		}
	}
	return lots
}

func JoinLots(lots []string) string {
	return strings.Join(lots, ",")
}
