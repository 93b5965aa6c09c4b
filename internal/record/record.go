// Package record provides defensive access to analysis records.
//
// An analysis record is a loosely-shaped JSON object produced by the upstream
// document extraction service. It has no guaranteed schema, so every read goes
// through the type-guarded accessors in this package rather than ad hoc casts.
// Accessors never panic; values that are missing or of the wrong type are
// treated as absent.
package record

import "strings"

// AnalysisRecord is the raw extraction output for a single document.
// Keys and value shapes vary by document and extractor version.
type AnalysisRecord map[string]interface{}

// AsMap returns v as a string-keyed map, or nil if v is not one.
func AsMap(v interface{}) map[string]interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return m
}

// AsSlice returns v as a slice, or nil if v is not one.
func AsSlice(v interface{}) []interface{} {
	s, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return s
}

// AsString returns v as a trimmed string. Non-strings and blank strings
// yield "".
func AsString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// AsStringSlice returns the string elements of v, trimmed, dropping blank
// and non-string entries. Returns nil if v is not a slice.
func AsStringSlice(v interface{}) []string {
	raw := AsSlice(v)
	if raw == nil {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s := AsString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AsFloat returns v as a float64. JSON numbers decode as float64; integers
// from other sources are converted. The second return is false if v is not
// numeric.
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
