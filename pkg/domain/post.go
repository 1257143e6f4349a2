package domain

import (
	"strings"
	"time"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

const MaxTitleLength = 200

type Post struct {
	Id        int64
	Author    UserSummary
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	CommentCount int
	LikeCount    int

	// Comments are oldest first. They are fetched only when asked with PostFetch.
	Comments []Comment
}

// PostParam is a request to create a post.
type PostParam struct {
	Author  int64
	Title   string
	Content string
}

// PostSpec is a validated PostParam.
type PostSpec struct {
	author  int64
	title   string
	content string
}

func (s *PostSpec) Author() int64   { return s.author }
func (s *PostSpec) Title() string   { return s.title }
func (s *PostSpec) Content() string { return s.content }

func (p PostParam) Validate() (*PostSpec, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if err := validateContent(p.Content); err != nil {
		return nil, err
	}
	return &PostSpec{author: p.Author, title: p.Title, content: p.Content}, nil
}

// PostUpdate is a request to change a post. nil fields are left unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostChange is a validated PostUpdate.
type PostChange struct {
	title   *string
	content *string
}

func (c *PostChange) Title() *string   { return c.title }
func (c *PostChange) Content() *string { return c.content }

func (u PostUpdate) Validate() (*PostChange, error) {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return nil, err
		}
	}
	if u.Content != nil {
		if err := validateContent(*u.Content); err != nil {
			return nil, err
		}
	}
	return &PostChange{title: u.Title, content: u.Content}, nil
}

// fields posts can be ordered by.
const (
	PostOrderByCreatedAt = "created_at"
	PostOrderByUpdatedAt = "updated_at"
	PostOrderByTitle     = "title"
)

// DefaultPostOrdering is newest first.
var DefaultPostOrdering = Ordering{Field: PostOrderByCreatedAt, Descending: true}

// ParsePostOrdering parses ordering expression for posts.
func ParsePostOrdering(expr string) (Ordering, error) {
	return ParseOrdering(
		expr, DefaultPostOrdering,
		PostOrderByCreatedAt, PostOrderByUpdatedAt, PostOrderByTitle,
	)
}

// PostQuery selects posts. Zero values of filters mean "any".
type PostQuery struct {
	AuthorId       *int64
	AuthorUsername string

	// case-insensitive substring of the title or the content.
	Search string

	Ordering   Ordering
	Pagination Pagination
}

// PostFetch tells what to load with posts.
type PostFetch struct {
	WithComments bool
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return kerr.NewValidationError("title", "this field may not be blank")
	}
	return validateLength("title", title, MaxTitleLength)
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return kerr.NewValidationError("content", "this field may not be blank")
	}
	return nil
}
