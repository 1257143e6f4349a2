package domain

import "time"

type Comment struct {
	Id        int64
	PostId    int64
	Author    UserSummary
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentParam is a request to comment on a post.
type CommentParam struct {
	PostId  int64
	Author  int64
	Content string
}

// CommentSpec is a validated CommentParam.
type CommentSpec struct {
	postId  int64
	author  int64
	content string
}

func (s *CommentSpec) PostId() int64   { return s.postId }
func (s *CommentSpec) Author() int64   { return s.author }
func (s *CommentSpec) Content() string { return s.content }

func (p CommentParam) Validate() (*CommentSpec, error) {
	if err := validateContent(p.Content); err != nil {
		return nil, err
	}
	return &CommentSpec{postId: p.PostId, author: p.Author, content: p.Content}, nil
}

// CommentContent is a validated new content of a comment.
type CommentContent struct {
	content string
}

func (c CommentContent) String() string { return c.content }

func NewCommentContent(content string) (CommentContent, error) {
	if err := validateContent(content); err != nil {
		return CommentContent{}, err
	}
	return CommentContent{content: content}, nil
}

// fields comments can be ordered by.
const (
	CommentOrderByCreatedAt = "created_at"
	CommentOrderByUpdatedAt = "updated_at"
)

// DefaultCommentOrdering is oldest first.
var DefaultCommentOrdering = Ordering{Field: CommentOrderByCreatedAt}

// ParseCommentOrdering parses ordering expression for comments.
func ParseCommentOrdering(expr string) (Ordering, error) {
	return ParseOrdering(
		expr, DefaultCommentOrdering,
		CommentOrderByCreatedAt, CommentOrderByUpdatedAt,
	)
}

// CommentQuery selects comments. Zero values of filters mean "any".
type CommentQuery struct {
	PostId         *int64
	AuthorId       *int64
	AuthorUsername string

	Ordering   Ordering
	Pagination Pagination
}
