package common

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected PaginationParams
	}{
		{name: "none", query: "", expected: PaginationParams{}},
		{name: "offset and limit", query: "?offset=2&limit=3", expected: PaginationParams{Offset: 2, Limit: 3}},
		{name: "page", query: "?page=3&page_size=2", expected: PaginationParams{Offset: 4, Limit: 2, Page: 3, PageSize: 2}},
		{name: "page size only", query: "?page_size=5", expected: PaginationParams{Offset: 0, Limit: 5, Page: 1, PageSize: 5}},
		{name: "page wins", query: "?page=2&page_size=2&offset=9", expected: PaginationParams{Offset: 2, Limit: 2, Page: 2, PageSize: 2}},
		{name: "limit capped", query: "?limit=5000", expected: PaginationParams{Limit: MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ExtractPaginationParams(httptest.NewRequest("GET", "/network"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestExtractPaginationParams_Invalid(t *testing.T) {
	for _, query := range []string{"?page=0", "?page_size=abc", "?offset=-1", "?limit=0", "?page=9223372036854775807&page_size=1000"} {
		_, err := ExtractPaginationParams(httptest.NewRequest("GET", "/network"+query, nil))
		assert.Error(t, err, query)
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := BuildPaginationMeta(PaginationParams{Offset: 2, Limit: 2, Page: 2, PageSize: 2}, 6)

	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	meta = BuildPaginationMeta(PaginationParams{}, 6)
	assert.False(t, meta.HasPrev)
	assert.False(t, meta.HasNext)
}
