package repository

// Pagination 分页信息
type Pagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPagination 根据总数计算分页信息
func NewPagination(page, pageSize int, totalCount int64) Pagination {
	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = (totalCount + int64(pageSize) - 1) / int64(pageSize)
	}

	return Pagination{
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1,
	}
}
