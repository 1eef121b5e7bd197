// Package pagination slices ordered result sets into fixed-size pages.
//
// The slicing never clamps: asking for a page past the end yields no items,
// and callers use TotalPages to keep navigation in range.
package pagination

import (
	dErrors "wardregistry/pkg/domain-errors"
)

const (
	// PrimaryPageSize is used by the main list view of every category.
	PrimaryPageSize = 10
	// DrillDownPageSize is used by report drill-down lists.
	DrillDownPageSize = 5
)

// Page is one slice of a result set plus the numbers needed to navigate it.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalPages is ceil(count/size). An empty list has zero pages.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Slice returns list[(page-1)*size : page*size], truncated at the end of the
// list. Pages before 1 or after the last page are empty.
func Slice[T any](list []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(list) {
		return []T{}
	}
	end := min(start+size, len(list))
	return list[start:end]
}

// Paginate slices list and reports the totals.
func Paginate[T any](list []T, page, size int) Page[T] {
	return Page[T]{
		Items:      Slice(list, page, size),
		Page:       page,
		PageSize:   size,
		Total:      len(list),
		TotalPages: TotalPages(len(list), size),
	}
}

// Map converts the items of a page, keeping the navigation numbers.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return Page[U]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

// Cursor is one view's page position. Each list view and each drill-down owns
// its own cursor; changing the search term or status filter sends the cursor
// back to page 1.
type Cursor struct {
	size   int
	page   int
	term   string
	status string
}

func NewCursor(size int) *Cursor {
	if size <= 0 {
		size = PrimaryPageSize
	}
	return &Cursor{size: size, page: 1}
}

func (c *Cursor) Page() int     { return c.page }
func (c *Cursor) PageSize() int { return c.size }

// SetQuery records the view's term and status filter, resetting to page 1
// when either differs from the previous call.
func (c *Cursor) SetQuery(term, status string) {
	if term != c.term || status != c.status {
		c.page = 1
	}
	c.term, c.status = term, status
}

// Goto moves to page n. Pages below 1 are rejected; pages above totalPages are
// rejected once the result size is known (totalPages > 0).
func (c *Cursor) Goto(n, totalPages int) error {
	if n < 1 {
		return dErrors.NewField(dErrors.CodeInvalidInput, "page", "page must be 1 or greater")
	}
	if totalPages > 0 && n > totalPages {
		return dErrors.NewField(dErrors.CodeInvalidInput, "page", "page is past the last page")
	}
	c.page = n
	return nil
}

// Next advances one page unless already on the last one.
func (c *Cursor) Next(totalPages int) bool {
	if c.page >= totalPages {
		return false
	}
	c.page++
	return true
}

// Prev steps back one page unless already on the first.
func (c *Cursor) Prev() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	return true
}
