// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title derives display titles from heterogeneous snapshot records.
//
// Several upstream sources embed a redundant restatement of the programme or
// institution name inside the title field ("MSc Data Science: Data Science",
// "Master of Arts in Global Studies Global Studies"). Clean collapses that
// redundancy; Resolve picks the raw field per origin and decides whether
// Clean applies.
package title

import (
	"strings"

	"github.com/pdiddy/catalog-server/internal/snapshot"
	"github.com/pdiddy/catalog-server/pkg/types"
)

// maxSuffixWindow caps how many trailing words the redundancy scan considers.
const maxSuffixWindow = 8

// Clean collapses a redundant restatement at the end of a raw title.
//
// Two rules, tried in order:
//
//  1. Colon rule: for "<A>: <B>" where lower(A) contains lower(B), the
//     suffix B restates part of A; return A.
//  2. Suffix-window rule: for window size k from min(8, wordCount/2) down
//     to 2, if the last k words appear (case-folded) inside the preceding
//     words, return the preceding words. Larger windows are tried first so
//     the longest redundant tail is removed; this ordering is a fixed
//     behavioral contract.
//
// When neither rule fires the input is returned trimmed.
func Clean(raw string) string {
	if i := strings.Index(raw, ": "); i > 0 {
		prefix, suffix := raw[:i], raw[i+2:]
		if suffix != "" && strings.Contains(strings.ToLower(prefix), strings.ToLower(suffix)) {
			return strings.TrimSpace(prefix)
		}
	}

	words := strings.Fields(raw)
	maxK := len(words) / 2
	if maxK > maxSuffixWindow {
		maxK = maxSuffixWindow
	}
	for k := maxK; k >= 2; k-- {
		prefix := strings.Join(words[:len(words)-k], " ")
		suffix := strings.Join(words[len(words)-k:], " ")
		if strings.Contains(strings.ToLower(prefix), strings.ToLower(suffix)) {
			return prefix
		}
	}

	return strings.TrimSpace(raw)
}

// Resolve extracts a display title from a record of the given origin.
// Field order per origin is fixed, first non-empty wins; a record with no
// usable title field resolves to "" rather than an error.
func Resolve(origin string, rec types.Record) string {
	switch origin {
	case snapshot.OriginUK:
		return Clean(rec.FirstString("programme_title", "title"))
	case snapshot.OriginUSA:
		// The US feed already publishes clean titles.
		return rec.FirstString("name", "title", "programTitle")
	case snapshot.OriginGermany:
		return Clean(rec.FirstString("title", "programme_title", "header_line"))
	case snapshot.OriginFinland:
		if s := types.Stringify(rec["title"]); s != "" {
			return Clean(s)
		}
		return Clean(bilingualName(rec["name"]))
	default:
		return ""
	}
}

// bilingualName reads the Finnish feed's nested name object, preferring the
// English variant.
func bilingualName(v any) string {
	name, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	if s := types.Stringify(name["en"]); s != "" {
		return s
	}
	return types.Stringify(name["fi"])
}
