package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func TestNewPagination(t *testing.T) {
	type When struct {
		page, size int
	}
	type Then struct {
		pagination domain.Pagination
		invalid    bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			actual, err := domain.NewPagination(when.page, when.size, 10, 100)
			if then.invalid {
				if !errors.Is(err, kerr.ErrValidation) {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if actual != then.pagination {
				t.Errorf("unmatch: %+v != %+v", actual, then.pagination)
			}
		}
	}

	t.Run("zero values fall back to defaults", theory(
		When{}, Then{pagination: domain.Pagination{Page: 1, PageSize: 10}},
	))
	t.Run("explicit values are kept", theory(
		When{page: 3, size: 25}, Then{pagination: domain.Pagination{Page: 3, PageSize: 25}},
	))
	t.Run("too large page size is clipped", theory(
		When{page: 1, size: 1000}, Then{pagination: domain.Pagination{Page: 1, PageSize: 100}},
	))
	t.Run("too large page is clipped not to overflow its offset", theory(
		When{page: math.MaxInt, size: 20},
		Then{pagination: domain.Pagination{Page: math.MaxInt / 20, PageSize: 20}},
	))
	t.Run("negative page is rejected", theory(When{page: -1}, Then{invalid: true}))
	t.Run("negative page size is rejected", theory(When{size: -1}, Then{invalid: true}))
}

func TestNewPagination_FarPage(t *testing.T) {
	for _, page := range []int{math.MaxInt, math.MaxInt / 10, math.MaxInt/10 + 1} {
		p, err := domain.NewPagination(page, 0, 10, 100)
		if err != nil {
			t.Fatal(err)
		}
		if p.Offset() < 0 {
			t.Errorf("page %d: offset is negative: %d", page, p.Offset())
		}

		got := domain.Page[int]{Items: []int{}, Total: 25, Pagination: p}
		if got.HasNext() {
			t.Errorf("page %d: it has next page", page)
		}
		if !got.HasPrevious() {
			t.Errorf("page %d: it has no previous page", page)
		}
	}
}

func TestPage(t *testing.T) {
	p := domain.Pagination{Page: 2, PageSize: 10}
	if p.Offset() != 10 || p.Limit() != 10 {
		t.Errorf("unmatch: offset %d, limit %d", p.Offset(), p.Limit())
	}

	for name, testcase := range map[string]struct {
		page             domain.Page[int]
		hasNext, hasPrev bool
	}{
		"first page of many": {
			page:    domain.Page[int]{Items: make([]int, 10), Total: 25, Pagination: domain.Pagination{Page: 1, PageSize: 10}},
			hasNext: true,
		},
		"middle page": {
			page:    domain.Page[int]{Items: make([]int, 10), Total: 25, Pagination: domain.Pagination{Page: 2, PageSize: 10}},
			hasNext: true, hasPrev: true,
		},
		"last page": {
			page:    domain.Page[int]{Items: make([]int, 5), Total: 25, Pagination: domain.Pagination{Page: 3, PageSize: 10}},
			hasPrev: true,
		},
		"empty": {
			page: domain.Page[int]{Items: nil, Total: 0, Pagination: domain.FirstPage()},
		},
	} {
		t.Run(name, func(t *testing.T) {
			if testcase.page.HasNext() != testcase.hasNext {
				t.Errorf("HasNext: %v", testcase.page.HasNext())
			}
			if testcase.page.HasPrevious() != testcase.hasPrev {
				t.Errorf("HasPrevious: %v", testcase.page.HasPrevious())
			}
		})
	}
}
