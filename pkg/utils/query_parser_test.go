package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParams_Defaults(t *testing.T) {
	params := ParseListParams(url.Values{})

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.False(t, params.LimitAll)
	assert.Equal(t, "date", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Nil(t, params.DateFrom)
	assert.Nil(t, params.DateTo)
}

func TestParseListParams_LimitAll(t *testing.T) {
	params := ParseListParams(url.Values{"limit": {"all"}})
	assert.True(t, params.LimitAll)
}

func TestParseListParams_IgnoresGarbage(t *testing.T) {
	params := ParseListParams(url.Values{
		"page":      {"-3"},
		"limit":     {"zero"},
		"sortBy":    {"price"},
		"sortOrder": {"sideways"},
		"dateFrom":  {"not-a-date"},
	})

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "date", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Nil(t, params.DateFrom)
}

func TestParseListParams_Filters(t *testing.T) {
	params := ParseListParams(url.Values{
		"page":      {"3"},
		"limit":     {"25"},
		"status":    {"IN_PROGRESS"},
		"search":    {"contract"},
		"sortBy":    {"name"},
		"sortOrder": {"asc"},
	})

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, "IN_PROGRESS", params.Status)
	assert.Equal(t, "contract", params.Search)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestParseListParams_DateToCoversWholeDay(t *testing.T) {
	params := ParseListParams(url.Values{
		"dateFrom": {"2026-08-01"},
		"dateTo":   {"2026-08-01"},
	})

	require.NotNil(t, params.DateFrom)
	require.NotNil(t, params.DateTo)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *params.DateFrom)

	// A same-day range must include records created during that day.
	created := time.Date(2026, 8, 1, 17, 30, 0, 0, time.UTC)
	assert.True(t, created.After(*params.DateFrom))
	assert.True(t, created.Before(*params.DateTo))
}
