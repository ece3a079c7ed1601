package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, pageSize int) PaginationMeta {
	meta := PaginationMeta{Total: total, Page: page, PageSize: pageSize}
	if pageSize > 0 {
		meta.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return meta
}

// PageBounds reads page and page_size from the query string and returns the
// slice bounds for a result of length n. page_size is capped at 100.
func PageBounds(c *gin.Context, n int) (start, end int, meta PaginationMeta) {
	page := positiveQuery(c, "page", 1)
	pageSize := min(positiveQuery(c, "page_size", defaultPageSize), maxPageSize)

	start = min((page-1)*pageSize, n)
	end = min(start+pageSize, n)
	return start, end, NewPaginationMeta(int64(n), page, pageSize)
}

func positiveQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
