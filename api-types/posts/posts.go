package posts

import (
	"github.com/opst/knitsocial-api-types/comments"
	"github.com/opst/knitsocial-api-types/misc/rfctime"
)

// Summary is a post in lists, without comments.
type Summary struct {
	Id           int64           `json:"id"`
	Author       string          `json:"author"`
	AuthorId     int64           `json:"author_id"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	CreatedAt    rfctime.RFC3339 `json:"created_at"`
	UpdatedAt    rfctime.RFC3339 `json:"updated_at"`
	CommentCount int             `json:"comment_count"`
	LikeCount    int             `json:"like_count"`
}

// Detail is a post with its comments, oldest first.
type Detail struct {
	Summary
	Comments []comments.Detail `json:"comments"`
}

// Create is a request body of POST /api/posts/ .
type Create struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Update is a request body of PUT/PATCH /api/posts/:postId/ .
//
// PUT needs both fields.
type Update struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
