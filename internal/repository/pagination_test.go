package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		pageSize    int
		totalCount  int64
		wantPages   int64
		wantHasNext bool
		wantHasPrev bool
	}{
		{
			name:        "first page of several",
			page:        1,
			pageSize:    10,
			totalCount:  25,
			wantPages:   3,
			wantHasNext: true,
			wantHasPrev: false,
		},
		{
			name:        "middle page",
			page:        2,
			pageSize:    10,
			totalCount:  25,
			wantPages:   3,
			wantHasNext: true,
			wantHasPrev: true,
		},
		{
			name:        "last page",
			page:        3,
			pageSize:    10,
			totalCount:  25,
			wantPages:   3,
			wantHasNext: false,
			wantHasPrev: true,
		},
		{
			name:        "page beyond last",
			page:        5,
			pageSize:    10,
			totalCount:  25,
			wantPages:   3,
			wantHasNext: false,
			wantHasPrev: true,
		},
		{
			name:        "empty result set",
			page:        1,
			pageSize:    12,
			totalCount:  0,
			wantPages:   0,
			wantHasNext: false,
			wantHasPrev: false,
		},
		{
			name:        "count multiple of page size",
			page:        1,
			pageSize:    10,
			totalCount:  30,
			wantPages:   3,
			wantHasNext: true,
			wantHasPrev: false,
		},
		{
			name:        "single partial page",
			page:        1,
			pageSize:    12,
			totalCount:  7,
			wantPages:   1,
			wantHasNext: false,
			wantHasPrev: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.totalCount)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.totalCount, p.TotalCount)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNextPage)
			assert.Equal(t, tt.wantHasPrev, p.HasPrevPage)
		})
	}
}

func TestSortByColumn(t *testing.T) {
	assert.Equal(t, "created_at", SortByDate.Column())
	assert.Equal(t, "progress_percentage", SortByProgress.Column())
	assert.Equal(t, "total_raised", SortByAmount.Column())

	// 未知键不能透传到ORDER BY
	assert.Equal(t, "created_at", SortBy("goal; DROP TABLE projects").Column())
	assert.Equal(t, "created_at", SortBy("").Column())
}

func TestSortOrderDirection(t *testing.T) {
	assert.Equal(t, "ASC", SortOrderAsc.Direction())
	assert.Equal(t, "DESC", SortOrderDesc.Direction())
	assert.Equal(t, "DESC", SortOrder("sideways").Direction())
}
