package transport

import (
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination carries the page_number/page_size query pair used by every
// list endpoint.
type Pagination struct {
	PageNumber int
	PageSize   int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// PaginationFromRequest parses page_number and page_size with defaults and
// an upper bound on page size.
func PaginationFromRequest(r *http.Request) Pagination {
	p := Pagination{PageNumber: 1, PageSize: DefaultPageSize}

	if v := r.URL.Query().Get("page_number"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageNumber = n
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PageSize = n
		}
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// PaginatedResponse is the envelope for paginated list endpoints.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	PageNumber int         `json:"page_number"`
	PageSize   int         `json:"page_size"`
	TotalCount int64       `json:"total_count"`
}
