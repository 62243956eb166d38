package utils

import (
	"net/url"
	"strconv"
	"time"

	"translation-office/pkg/types"
)

// ParseListParams parses the admin list query string.
// Defaults: page=1, limit=10, sorted by creation date descending.
// limit=all returns every matching row.
func ParseListParams(query url.Values) types.ListParams {
	params := types.ListParams{
		Page:      1,
		Limit:     10,
		SortBy:    "date",
		SortOrder: "desc",
	}

	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limitStr == "all" {
			params.LimitAll = true
		} else if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			params.Limit = l
		}
	}

	params.Status = query.Get("status")
	params.Search = query.Get("search")

	if sortBy := query.Get("sortBy"); sortBy == "date" || sortBy == "name" {
		params.SortBy = sortBy
	}
	if sortOrder := query.Get("sortOrder"); sortOrder == "asc" || sortOrder == "desc" {
		params.SortOrder = sortOrder
	}

	if df := query.Get("dateFrom"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			params.DateFrom = &t
		}
	}
	if dt := query.Get("dateTo"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			// Round up to the end of the day so a single calendar day
			// includes the whole day.
			end := t.Add(24*time.Hour - time.Millisecond)
			params.DateTo = &end
		}
	}

	return params
}
