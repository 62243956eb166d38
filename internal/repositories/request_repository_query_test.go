package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translation-office/pkg/types"
)

func TestBuildListSelectQuery_StatusAndSearch(t *testing.T) {
	params := types.ListParams{
		Page:      1,
		Limit:     10,
		Status:    "PENDING",
		Search:    "john",
		SortOrder: "desc",
	}

	querySQL, args, err := buildListSelectQuery(params)
	require.NoError(t, err)

	assert.Contains(t, querySQL, "status = $1")
	assert.Contains(t, querySQL, "customer_name ILIKE $2")
	assert.Contains(t, querySQL, "customer_email ILIKE $3")
	assert.Contains(t, querySQL, "original_file_name ILIKE $4")
	assert.Contains(t, querySQL, "ILIKE $2 OR", "search columns must be ORed, not ANDed")
	assert.Contains(t, querySQL, "ORDER BY created_at DESC")
	assert.Contains(t, querySQL, "LIMIT 10 OFFSET 0")

	assert.Equal(t, []interface{}{"PENDING", "%john%", "%john%", "%john%"}, args)
}

func TestBuildListCountQuery_SharesFilters(t *testing.T) {
	params := types.ListParams{
		Page:   3,
		Limit:  25,
		Status: "IN_PROGRESS",
		Search: "contract",
	}

	countSQL, countArgs, err := buildListCountQuery(params)
	require.NoError(t, err)

	// The count sees the same WHERE as the page, never LIMIT/OFFSET, so
	// pagination.total reflects the full filtered set.
	assert.Contains(t, countSQL, "SELECT COUNT(*)")
	assert.Contains(t, countSQL, "status = $1")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "OFFSET")

	_, selectArgs, err := buildListSelectQuery(params)
	require.NoError(t, err)
	assert.Equal(t, selectArgs, countArgs)
}

func TestBuildListSelectQuery_DateBounds(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 23, 59, 59, 999000000, time.UTC)
	params := types.ListParams{
		Page:     1,
		Limit:    10,
		DateFrom: &from,
		DateTo:   &to,
	}

	querySQL, args, err := buildListSelectQuery(params)
	require.NoError(t, err)

	assert.Contains(t, querySQL, "created_at >= $1")
	assert.Contains(t, querySQL, "created_at <= $2")
	assert.Equal(t, []interface{}{from, to}, args)
}

func TestBuildListSelectQuery_Pagination(t *testing.T) {
	querySQL, _, err := buildListSelectQuery(types.ListParams{Page: 3, Limit: 25})
	require.NoError(t, err)
	assert.Contains(t, querySQL, "LIMIT 25 OFFSET 50")
}

func TestBuildListSelectQuery_LimitAllSkipsPagination(t *testing.T) {
	querySQL, _, err := buildListSelectQuery(types.ListParams{LimitAll: true})
	require.NoError(t, err)
	assert.NotContains(t, querySQL, "LIMIT")
	assert.NotContains(t, querySQL, "OFFSET")
}

func TestBuildListSelectQuery_SortByName(t *testing.T) {
	querySQL, _, err := buildListSelectQuery(types.ListParams{Page: 1, Limit: 10, SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Contains(t, querySQL, "ORDER BY customer_name ASC")
}

func TestBuildListSelectQuery_NoFilters(t *testing.T) {
	querySQL, args, err := buildListSelectQuery(types.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotContains(t, querySQL, "WHERE")
	assert.Empty(t, args)
}
