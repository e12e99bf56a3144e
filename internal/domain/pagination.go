package domain

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest carries normalized paging params.
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination normalizes raw query values. Malformed or out-of-range
// values are clamped to defaults, never rejected.
func ParsePagination(page, pageSize string) PageRequest {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}

	size, err := strconv.Atoi(pageSize)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return PageRequest{Page: p, PageSize: size}
}

// Paginated is the uniform list envelope.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func NewPaginated[T any](data []T, total int, pr PageRequest) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + pr.PageSize - 1) / pr.PageSize
	}
	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       pr.Page,
		PageSize:   pr.PageSize,
		TotalPages: totalPages,
	}
}
