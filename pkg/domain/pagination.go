package domain

import (
	"fmt"
	"math"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination selects a page of a list. Page is 1-origin.
type Pagination struct {
	Page     int
	PageSize int
}

// FirstPage is the first page with the default page size.
func FirstPage() Pagination {
	return Pagination{Page: 1, PageSize: DefaultPageSize}
}

// NewPagination validates page and page size.
//
// Zero values fall back to page 1 and defaultSize.
// Page size larger than maxSize is clipped.
// Page is clipped so that its offset does not overflow int. Such pages are empty anyway.
func NewPagination(page, size, defaultSize, maxSize int) (Pagination, error) {
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return Pagination{}, kerr.NewValidationError("page", "must be a positive integer")
	}
	if size == 0 {
		size = defaultSize
	}
	if size < 0 {
		return Pagination{}, kerr.NewValidationError("page_size", "must be a positive integer")
	}
	if maxSize < size {
		size = maxSize
	}
	if 0 < size {
		if last := math.MaxInt / size; last < page {
			page = last
		}
	}
	return Pagination{Page: page, PageSize: size}, nil
}

// OrFirstPage returns p, or FirstPage when p is the zero value.
func (p Pagination) OrFirstPage() Pagination {
	if p == (Pagination{}) {
		return FirstPage()
	}
	return p
}

// Limit is for SQL's LIMIT.
func (p Pagination) Limit() int {
	return p.PageSize
}

// Offset is for SQL's OFFSET.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) String() string {
	return fmt.Sprintf("page %d (size %d)", p.Page, p.PageSize)
}

// Page is a page of items and the total count of items in all pages.
type Page[T any] struct {
	Items      []T
	Total      int
	Pagination Pagination
}

// HasNext tells whether a page follows this.
func (p Page[T]) HasNext() bool {
	return p.Pagination.Offset()+len(p.Items) < p.Total
}

// HasPrevious tells whether a page precedes this.
func (p Page[T]) HasPrevious() bool {
	return 1 < p.Pagination.Page
}
