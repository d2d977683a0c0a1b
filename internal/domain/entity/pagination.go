package entity

// PaginationParams represents pagination request parameters
type PaginationParams struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Pagination constants
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1
)

// Normalize clamps page and limit into the accepted range
func (p *PaginationParams) Normalize() {
	p.NormalizeWith(DefaultPageSize, MaxPageSize)
}

// NormalizeWith clamps using the given default and maximum page size
func (p *PaginationParams) NormalizeWith(defaultLimit, maxLimit int) {
	if defaultLimit < 1 {
		defaultLimit = DefaultPageSize
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	} else if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset returns the number of rows to skip
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PaginationMeta represents pagination metadata in responses
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

// NewPaginationMeta creates pagination metadata from parameters and total count
func NewPaginationMeta(p PaginationParams, total int64) PaginationMeta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return PaginationMeta{
		CurrentPage: p.Page,
		PerPage:     p.Limit,
		Total:       total,
		TotalPages:  totalPages,
	}
}

// Page is one page of results plus its metadata
type Page[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPage wraps items with metadata. A nil slice is rendered as an empty list.
func NewPage[T any](items []T, p PaginationParams, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Data: items, Pagination: NewPaginationMeta(p, total)}
}
