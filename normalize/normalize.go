// Package normalize coerces the weakly-typed values that arrive from pasted
// postings, stored records, and API clients into strictly-typed Go values.
// Every function returns (value, ok); ok=false is the explicit "not provided"
// state and is never conflated with a zero value.
package normalize

import (
	"strconv"
	"strings"
)

// Bool coerces a raw value to a boolean. Accepts native bools and the
// strings "true"/"false" and "yes"/"no" case-insensitively.
func Bool(v interface{}) (bool, bool) {
	switch val := v.(type) {
	case nil:
		return false, false
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "":
			return false, false
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
	}
	return false, false
}

// Number coerces a raw value to a float64. String inputs may carry currency
// symbols, comma grouping, and a trailing K/M shorthand ("$1,200", "10K").
func Number(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		return parseNumberString(val)
	}
	return 0, false
}

// Percent coerces a raw value to a fraction in [0,1]. Accepts a trailing "%"
// string ("55%"), a fraction at most 1 (0.55), or a whole number above 1
// (55, divided by 100).
func Percent(v interface{}) (float64, bool) {
	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if strings.HasSuffix(trimmed, "%") {
			n, ok := parseNumberString(strings.TrimSuffix(trimmed, "%"))
			if !ok {
				return 0, false
			}
			return n / 100, true
		}
	}

	n, ok := Number(v)
	if !ok {
		return 0, false
	}
	if n > 1 {
		return n / 100, true
	}
	return n, true
}

func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Strip currency symbols and grouping commas
	s = strings.TrimLeft(s, "$€£ ")
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier = 1000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier = 1e6
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}
