package types

import "time"

// ListParams carries the admin list query: filtering, sorting, pagination.
// LimitAll reports the literal limit=all, which collapses pagination to a
// single page of every matching row.
type ListParams struct {
	Page      int
	Limit     int
	LimitAll  bool
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Pagination is the list response metadata.
type Pagination struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total uint64 `json:"total"`
	Pages int    `json:"pages"`
}
