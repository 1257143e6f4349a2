package pages

import (
	"net/url"
	"strconv"

	apipages "github.com/opst/knitsocial-api-types/pages"
	"github.com/opst/knitsocial/pkg/domain"
	"github.com/opst/knitsocial/pkg/utils"
)

// Compose converts a page of domain objects to the wire form.
//
// Links to the next and previous pages are made from self,
// which should be the url requested. Other query parameters in self are kept.
func Compose[T any, R any](page domain.Page[T], self *url.URL, compose func(T) R) apipages.Page[R] {
	ret := apipages.Page[R]{
		Count:   page.Total,
		Results: utils.Map(page.Items, compose),
	}
	if page.HasNext() {
		ret.Next = link(self, page.Pagination.Page+1)
	}
	if page.HasPrevious() {
		ret.Previous = link(self, page.Pagination.Page-1)
	}
	return ret
}

func link(self *url.URL, page int) *string {
	u := *self
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
