// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholarships

import (
	"fmt"
	"testing"

	"github.com/pdiddy/catalog-server/pkg/types"
)

// --- join ---

func TestStepsLookup(t *testing.T) {
	details := []types.Record{
		{"id": "a", "steps": []any{"apply", "interview"}},
		{"scholarship_id": "b", "application_steps": []any{"apply"}},
		{"id": "c", "steps": "not a list"},
		{"note": "no identifier, skipped"},
	}

	lookup := StepsLookup(details)

	if len(lookup) != 3 {
		t.Fatalf("len(lookup) = %d, want 3", len(lookup))
	}
	if got := lookup["a"]; len(got) != 2 {
		t.Errorf("lookup[a] = %v, want two steps", got)
	}
	if got := lookup["b"]; len(got) != 1 {
		t.Errorf("lookup[b] = %v, want one step", got)
	}
	if got := lookup["c"]; len(got) != 0 {
		t.Errorf("lookup[c] = %v, want empty list", got)
	}
}

func TestStepsLookupLaterDuplicateWins(t *testing.T) {
	details := []types.Record{
		{"id": "x", "steps": []any{"old"}},
		{"id": "x", "steps": []any{"new", "newer"}},
	}
	lookup := StepsLookup(details)
	if got := lookup["x"]; len(got) != 2 || got[0] != "new" {
		t.Errorf("lookup[x] = %v, want the later record's steps", got)
	}
}

func TestStepsLookupNumericIdentifier(t *testing.T) {
	// A numeric id in the detail file must join against the string
	// spelling in the main file, and vice versa.
	details := []types.Record{{"id": float64(42), "steps": []any{"apply"}}}
	main := []types.Record{{"id": "42", "name": "Grant"}}

	merged := Merge(main, StepsLookup(details))
	if got := merged[0]["steps"].([]any); len(got) != 1 {
		t.Errorf("steps = %v, want the numeric-id match", got)
	}
}

func TestMergeDefaultsToEmptySteps(t *testing.T) {
	main := []types.Record{
		{"id": "known", "name": "A"},
		{"id": "unknown", "name": "B"},
		{"name": "C, no identifier"},
	}
	lookup := map[string][]any{"known": {"apply", "wait"}}

	merged := Merge(main, lookup)

	if got := merged[0]["steps"].([]any); len(got) != 2 {
		t.Errorf("merged[0] steps = %v, want [apply wait]", got)
	}
	for i := 1; i < 3; i++ {
		steps, ok := merged[i]["steps"].([]any)
		if !ok || len(steps) != 0 {
			t.Errorf("merged[%d] steps = %v, want empty list", i, merged[i]["steps"])
		}
	}
}

func TestMergeDoesNotMutateSource(t *testing.T) {
	main := []types.Record{{"id": "a"}}
	Merge(main, map[string][]any{"a": {"apply"}})
	if _, ok := main[0]["steps"]; ok {
		t.Error("Merge wrote into the source record")
	}
}

// --- filters ---

func TestFilterCountry(t *testing.T) {
	main := []types.Record{
		{"id": "1", "country": "Germany"},
		{"id": "2", "country_region": "germany"},
		{"id": "3", "countryRegion": "Finland"},
		{"id": "4"},
	}

	result := Query(main, nil, Filters{Country: "GERMANY"}, 1, 10)
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2 (case-insensitive, all aliases)", result.Total)
	}
}

func TestFilterLevel(t *testing.T) {
	tests := []struct {
		name string
		rec  types.Record
		want bool
	}{
		{"list contains", types.Record{"degree_levels": []any{"bachelor", "master"}}, true},
		{"list missing level", types.Record{"degree_levels": []any{"phd"}}, false},
		{"camelCase alias", types.Record{"degreeLevels": []any{"master"}}, true},
		{"levels alias", types.Record{"levels": []any{"master"}}, true},
		{"scalar equal", types.Record{"degree_levels": "master"}, true},
		{"scalar different", types.Record{"degree_levels": "bachelor"}, false},
		{"field absent", types.Record{}, false},
		{"unusable type", types.Record{"degree_levels": 3.0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Query([]types.Record{tt.rec}, nil, Filters{Level: "master"}, 1, 10)
			if got := result.Total == 1; got != tt.want {
				t.Errorf("level filter pass = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterDeadlineFloor(t *testing.T) {
	main := []types.Record{
		{"id": "past", "deadline": "2024-12-31"},
		{"id": "boundary", "deadline": "2025-01-01"},
		{"id": "future", "deadline": "2025-06-15"},
		{"id": "open"},
	}

	result := Query(main, nil, Filters{Deadline: "2025-01-01"}, 1, 10)

	if result.Total != 3 {
		t.Fatalf("Total = %d, want 3", result.Total)
	}
	var ids []string
	for _, rec := range result.Data {
		ids = append(ids, rec["id"].(string))
	}
	want := []string{"boundary", "future", "open"}
	if fmt.Sprint(ids) != fmt.Sprint(want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestFilterText(t *testing.T) {
	main := []types.Record{
		{"id": "1", "name": "Merit Scholarship"},
		{"id": "2", "title": "Need-Based Grant", "provider": "Merit Foundation"},
		{"id": "3", "name": "Travel Grant", "organizer": "City Council"},
	}

	tests := []struct {
		text string
		want int
	}{
		{"merit", 2}, // name of 1, provider of 2
		{"grant", 2}, // title of 2, name of 3
		{"council", 1},
		{"nothing", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := Query(main, nil, Filters{Text: tt.text}, 1, 10)
			if result.Total != tt.want {
				t.Errorf("Total = %d, want %d", result.Total, tt.want)
			}
		})
	}
}

func TestFiltersCombine(t *testing.T) {
	main := []types.Record{
		{"id": "1", "country": "Finland", "degree_levels": []any{"master"}, "deadline": "2025-09-01", "name": "Nordic Excellence"},
		{"id": "2", "country": "Finland", "degree_levels": []any{"master"}, "deadline": "2024-01-01", "name": "Nordic Excellence"},
		{"id": "3", "country": "Sweden", "degree_levels": []any{"master"}, "deadline": "2025-09-01", "name": "Nordic Excellence"},
	}
	f := Filters{Country: "finland", Level: "master", Deadline: "2025-01-01", Text: "nordic"}

	result := Query(main, nil, f, 1, 10)
	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
	if result.Data[0]["id"] != "1" {
		t.Errorf("id = %v, want 1", result.Data[0]["id"])
	}
}

// --- pagination ---

func TestQueryPaginationClamps(t *testing.T) {
	var main []types.Record
	for i := 0; i < 60; i++ {
		main = append(main, types.Record{"id": fmt.Sprintf("s%d", i)})
	}

	result := Query(main, nil, Filters{}, 0, 1000)
	if result.Page != 1 {
		t.Errorf("Page = %d, want 1", result.Page)
	}
	if result.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", result.PageSize)
	}
	if len(result.Data) != 50 {
		t.Errorf("len(Data) = %d, want 50", len(result.Data))
	}
	if result.Total != 60 {
		t.Errorf("Total = %d, want 60", result.Total)
	}
}
