package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"datasight/domain/dataset"
)

// parseNumeric attempts to interpret a raw cell value as a float64.
// Strings must parse losslessly; infinities and NaN are rejected.
func parseNumeric(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return 0, false
		}
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// booleanTokens is the fixed set of string values accepted as boolean-like
var booleanTokens = map[string]bool{
	"true": true, "false": true,
	"0": true, "1": true,
	"yes": true, "no": true,
	"y": true, "n": true,
}

// parseBoolean reports whether a raw cell value is boolean-like
func parseBoolean(v any) bool {
	switch val := v.(type) {
	case bool:
		return true
	case string:
		return booleanTokens[strings.ToLower(strings.TrimSpace(val))]
	default:
		return false
	}
}

// dateLayouts are tried in order by parseDate. The list is permissive on
// purpose: upstream exports mix ISO, US and long-form date strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123,
}

// parseDate attempts a permissive date parse of a raw cell value
func parseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// valueString renders a raw cell value for distinct counting
func valueString(v any) string {
	return fmt.Sprint(v)
}

// serializeRecord produces the structural form of a row with stable key
// order, used for duplicate detection.
func serializeRecord(r dataset.Record) string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(valueString(r[k]))
	}
	return b.String()
}

// numericValues extracts every parseable numeric value of one column,
// preserving row order and skipping missing cells.
func numericValues(records []dataset.Record, column string) []float64 {
	var values []float64
	for _, rec := range records {
		v, ok := rec[column]
		if !ok || dataset.IsMissing(v) {
			continue
		}
		if f, ok := parseNumeric(v); ok {
			values = append(values, f)
		}
	}
	return values
}
