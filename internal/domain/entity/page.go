package entity

// Page is an offset-based pagination request.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// PageResult is one page of items plus the total number of matching rows.
type PageResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPageResult builds a PageResult, normalizing nil items to an empty slice.
func NewPageResult[T any](items []T, total int64, page Page) *PageResult[T] {
	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}
}
