package pages

// Page is a page of a list.
type Page[T any] struct {
	// total number of items in all pages.
	Count int `json:"count"`

	// url of the next page. null on the last page.
	Next *string `json:"next"`

	// url of the previous page. null on the first page.
	Previous *string `json:"previous"`

	Results []T `json:"results"`
}
