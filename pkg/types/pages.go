// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProgrammePage is the paginated envelope returned for programme queries.
type ProgrammePage struct {
	// Data is one page of records, in snapshot order.
	Data []Record `json:"data"`

	// Total is the number of records passing the filters, before pagination.
	Total int `json:"total"`

	// Page is the effective (clamped) page number, starting at 1.
	Page int `json:"page"`

	// PageSize is the effective (clamped) page size, between 1 and 50.
	PageSize int `json:"pageSize"`

	// Country is the origin tag the query ran against.
	Country string `json:"country"`
}

// ScholarshipPage is the paginated envelope returned for scholarship queries.
type ScholarshipPage struct {
	Data     []Record `json:"data"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}
