// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// Record is one parsed snapshot line. Snapshot schemas vary by origin and by
// scrape generation, so fields are accessed through alias chains rather than
// a fixed struct.
type Record map[string]any

// First returns the value of the first key present in the record.
func (r Record) First(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// FirstString returns the first key whose value coerces to a non-empty
// string. Numbers are rendered in their canonical form; other types yield "".
func (r Record) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := Stringify(r[k]); s != "" {
			return s
		}
	}
	return ""
}

// Stringify coerces a JSON-decoded value to a trimmed string, or "" when the
// value has no sensible string form.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// CanonicalID normalizes an identifier value to the string form used as a
// join key. Numeric identifiers and their string spellings map to the same
// key ("42" and 42 both become "42"); absent or unusable values become "".
func CanonicalID(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
