// Package coerce turns loosely typed decoded JSON values into typed fields.
//
// Source records are inconsistent: plot counts arrive as numbers or numeric
// strings, years as strings or numbers, and blanks as "" or null. Each parser
// reports whether a usable value was present so callers can pick a default
// without mistaking a legitimate zero for a missing value.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// String returns the trimmed text of v. Numbers and true are formatted;
// nil, false, blank strings and composite values are absent.
func String(v any) (string, bool) {
	s, ok := Text(v)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Text is String without trimming: a string is returned exactly as given
// and only "" counts as absent.
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

// Float returns v as a finite float64. Numeric strings are parsed.
func Float(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int returns v as an int, truncating any fractional part.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// StringOr returns String(v) or def when absent.
func StringOr(v any, def string) string {
	if s, ok := String(v); ok {
		return s
	}
	return def
}

// FloatOr returns Float(v) or def when absent.
func FloatOr(v any, def float64) float64 {
	if f, ok := Float(v); ok {
		return f
	}
	return def
}

// IntOr returns Int(v) or def when absent.
func IntOr(v any, def int) int {
	if i, ok := Int(v); ok {
		return i
	}
	return def
}

// FirstString returns the first present value among vs.
func FirstString(vs ...any) (string, bool) {
	for _, v := range vs {
		if s, ok := String(v); ok {
			return s, true
		}
	}
	return "", false
}
