package shop

import (
	"fmt"

	"github.com/petshop/backend/internal/domain/shared"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest represents pagination query parameters. Pages are 1-based on
// the wire; repositories translate to 0-based offsets.
type PageRequest struct {
	Page      int    `form:"page"`
	Size      int    `form:"size"`
	SortBy    string `form:"sortBy"`
	Direction string `form:"direction"`
}

// Sanitize fills in defaults and clamps out-of-range values
func (r *PageRequest) Sanitize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = defaultPageSize
	}
	if r.Size > maxPageSize {
		r.Size = maxPageSize
	}
	if r.SortBy == "" {
		r.SortBy = "id"
	}
	if r.Direction != "asc" && r.Direction != "desc" {
		r.Direction = "asc"
	}
}

// ToFilter converts the request to a domain filter
func (r PageRequest) ToFilter() shared.Filter {
	return shared.Filter{
		Page:     r.Page,
		PageSize: r.Size,
		OrderBy:  r.SortBy,
		OrderDir: r.Direction,
	}
}

// PagedResponse wraps one page of results with paging metadata and
// navigation links
type PagedResponse[T any] struct {
	Data          []T               `json:"data"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
	Last          bool              `json:"last"`
	Links         map[string]string `json:"links"`
}

// NewPagedResponse builds a paged response with navigation links relative to
// baseURL. The prev link is present only past the first page, the next link
// only before the last, and the last link only when there are any pages.
func NewPagedResponse[T any](data []T, total int64, req PageRequest, baseURL string) PagedResponse[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int(total) / req.Size
		if int(total)%req.Size > 0 {
			totalPages++
		}
	}
	last := req.Page >= totalPages

	link := func(page int) string {
		return fmt.Sprintf("%s?page=%d&size=%d&sortBy=%s&direction=%s",
			baseURL, page, req.Size, req.SortBy, req.Direction)
	}

	links := map[string]string{
		"first": link(1),
	}
	if req.Page > 1 {
		links["prev"] = link(req.Page - 1)
	}
	if !last {
		links["next"] = link(req.Page + 1)
	}
	if totalPages > 0 {
		links["last"] = link(totalPages)
	}

	return PagedResponse[T]{
		Data:          data,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          last,
		Links:         links,
	}
}
