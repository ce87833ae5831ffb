// README: Defensive parsing helpers; every coercion failure yields a default, never an error.
package quote

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// parseFloat reports whether the trimmed value is a usable number. Empty and
// non-numeric catalog cells are "absent", not faults.
func parseFloat(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFloatDefault(v string, def float64) float64 {
	if f, ok := parseFloat(v); ok {
		return f
	}
	return def
}

func parseIntDefault(v string, def int) int {
	f, ok := parseFloat(v)
	if !ok {
		return def
	}
	return int(f)
}

// coerceCapacity parses a capacity cell, clamping to the >= 0 invariant.
func coerceCapacity(v string) int {
	n := parseIntDefault(v, 0)
	if n < 0 {
		return 0
	}
	return n
}

// normalizeZip left-pads zips shorter than five digits with zeros, so "5249"
// and "05249" compare equal. Longer values pass through untouched.
func normalizeZip(v string) string {
	v = strings.TrimSpace(v)
	for len(v) < 5 {
		v = "0" + v
	}
	return v
}

// isPromWindow reports whether the date is a Saturday in March, April, or May.
// Unparsable dates are not prom; a bad date never fails the request.
func isPromWindow(dateStr string) bool {
	if dateStr == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false
	}
	m := d.Month()
	return (m == time.March || m == time.April || m == time.May) && d.Weekday() == time.Saturday
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// titleCase uppercases the first letter of each space-separated word. Catalog
// city names are plain ASCII, so no locale handling is needed.
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
