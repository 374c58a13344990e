// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestFirstString(t *testing.T) {
	rec := Record{
		"empty":  "",
		"padded": "  value  ",
		"number": float64(7),
		"nested": map[string]any{"en": "x"},
	}

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"first non-empty wins", []string{"empty", "padded"}, "value"},
		{"number coerced", []string{"number"}, "7"},
		{"nested object unusable", []string{"nested"}, ""},
		{"absent keys", []string{"missing", "also_missing"}, ""},
		{"order respected", []string{"padded", "number"}, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rec.FirstString(tt.keys...); got != tt.want {
				t.Errorf("FirstString(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string passthrough", "abc", "abc"},
		{"string trimmed", " 42 ", "42"},
		{"integer-valued number", float64(42), "42"},
		{"fractional number", float64(4.5), "4.5"},
		{"nil", nil, ""},
		{"bool unusable", true, ""},
		{"object unusable", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalID(tt.v); got != tt.want {
				t.Errorf("CanonicalID(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
