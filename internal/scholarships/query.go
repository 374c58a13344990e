// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholarships joins the scholarship snapshot with its
// application-steps snapshot and applies the catalogue filters.
//
// Scholarship records come from several scrape generations, so every field
// is reached through an alias chain: identifiers are "id" or
// "scholarship_id", steps are "steps" or "application_steps", and so on.
// Identifiers are normalized to a canonical string before joining, so a
// numeric 42 in one file matches the string "42" in the other.
package scholarships

import (
	"strings"

	"github.com/pdiddy/catalog-server/internal/programmes"
	"github.com/pdiddy/catalog-server/pkg/types"
)

var (
	idKeys       = []string{"id", "scholarship_id"}
	stepsKeys    = []string{"steps", "application_steps"}
	countryKeys  = []string{"country", "country_region", "countryRegion"}
	levelKeys    = []string{"degree_levels", "degreeLevels", "levels"}
	titleKeys    = []string{"name", "title"}
	providerKeys = []string{"provider", "organizer"}
)

// Filters holds the optional scholarship predicates. Empty fields are
// skipped. Application order is fixed: country, level, deadline, text.
type Filters struct {
	// Country matches case-insensitively and exactly.
	Country string

	// Level must appear in the record's level list, or equal its scalar
	// level value.
	Level string

	// Deadline is an inclusive YYYY-MM-DD lower bound. Records without a
	// deadline always pass.
	Deadline string

	// Text matches case-folded substrings of the name or the provider.
	Text string
}

// StepsLookup builds the identifier-to-steps map from the detail snapshot.
// Detail records without an identifier are skipped; when the snapshot holds
// duplicate identifiers the later record wins. A detail record whose steps
// field is not a list contributes an empty list.
func StepsLookup(details []types.Record) map[string][]any {
	lookup := make(map[string][]any, len(details))
	for _, rec := range details {
		v, _ := rec.First(idKeys...)
		id := types.CanonicalID(v)
		if id == "" {
			continue
		}
		steps, _ := rec.First(stepsKeys...)
		if list, ok := steps.([]any); ok {
			lookup[id] = list
		} else {
			lookup[id] = []any{}
		}
	}
	return lookup
}

// Merge attaches a "steps" attribute to a copy of each main record: the
// lookup's list for the record's identifier, or an empty list when there is
// no match. Source records are never mutated.
func Merge(main []types.Record, lookup map[string][]any) []types.Record {
	merged := make([]types.Record, 0, len(main))
	for _, rec := range main {
		out := make(types.Record, len(rec)+1)
		for k, v := range rec {
			out[k] = v
		}
		steps := []any{}
		v, _ := rec.First(idKeys...)
		if id := types.CanonicalID(v); id != "" {
			if list, ok := lookup[id]; ok {
				steps = list
			}
		}
		out["steps"] = steps
		merged = append(merged, out)
	}
	return merged
}

// Query joins main and detail records, applies the filters, and returns one
// page with the same clamp and slice semantics as the programme engine.
func Query(main, details []types.Record, f Filters, page, pageSize int) types.ScholarshipPage {
	merged := Merge(main, StepsLookup(details))

	filtered := make([]types.Record, 0, len(merged))
	for _, rec := range merged {
		if matches(rec, f) {
			filtered = append(filtered, rec)
		}
	}

	page, pageSize = programmes.Clamp(page, pageSize)
	return types.ScholarshipPage{
		Data:     programmes.Page(filtered, page, pageSize),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}
}

func matches(rec types.Record, f Filters) bool {
	if f.Country != "" && !strings.EqualFold(rec.FirstString(countryKeys...), f.Country) {
		return false
	}
	if f.Level != "" && !matchesLevel(rec, f.Level) {
		return false
	}
	if f.Deadline != "" {
		// YYYY-MM-DD sorts lexicographically in date order. A record with
		// no deadline passes the floor unconditionally.
		if deadline := rec.FirstString("deadline"); deadline != "" && deadline < f.Deadline {
			return false
		}
	}
	if f.Text != "" && !matchesText(rec, f.Text) {
		return false
	}
	return true
}

func matchesLevel(rec types.Record, level string) bool {
	v, ok := rec.First(levelKeys...)
	if !ok {
		return false
	}
	if list, isList := v.([]any); isList {
		for _, entry := range list {
			if types.Stringify(entry) == level {
				return true
			}
		}
		return false
	}
	return types.Stringify(v) == level
}

func matchesText(rec types.Record, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(rec.FirstString(titleKeys...)), needle) ||
		strings.Contains(strings.ToLower(rec.FirstString(providerKeys...)), needle)
}
