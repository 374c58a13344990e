// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package programmes filters and paginates programme snapshot records.
package programmes

import (
	"strings"

	"github.com/pdiddy/catalog-server/internal/title"
	"github.com/pdiddy/catalog-server/pkg/types"
)

// Pagination clamp bounds. Page sizes above maxPageSize are served as
// maxPageSize rather than rejected.
const (
	minPageSize = 1
	maxPageSize = 50
)

// Query filters records by case-folded substring match of q against each
// record's resolved title, then returns one page. Total counts the filtered
// set before pagination. Filter order is snapshot order throughout.
func Query(origin string, records []types.Record, q string, page, pageSize int) types.ProgrammePage {
	filtered := records
	if q != "" {
		needle := strings.ToLower(q)
		filtered = make([]types.Record, 0, len(records))
		for _, rec := range records {
			if strings.Contains(strings.ToLower(title.Resolve(origin, rec)), needle) {
				filtered = append(filtered, rec)
			}
		}
	}

	page, pageSize = Clamp(page, pageSize)
	return types.ProgrammePage{
		Data:     Page(filtered, page, pageSize),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
		Country:  origin,
	}
}

// Clamp normalizes pagination parameters: page at least 1, pageSize within
// [1, 50]. Out-of-range values are coerced, never rejected.
func Clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < minPageSize {
		pageSize = minPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// Page returns the contiguous slice for a clamped page: zero-based offset
// (page-1)*pageSize, at most pageSize records, empty past the end.
func Page(records []types.Record, page, pageSize int) []types.Record {
	offset := (page - 1) * pageSize
	if offset >= len(records) {
		return []types.Record{}
	}
	end := offset + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
