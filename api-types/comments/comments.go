package comments

import "github.com/opst/knitsocial-api-types/misc/rfctime"

type Detail struct {
	Id        int64           `json:"id"`
	PostId    int64           `json:"post"`
	Author    string          `json:"author"`
	AuthorId  int64           `json:"author_id"`
	Content   string          `json:"content"`
	CreatedAt rfctime.RFC3339 `json:"created_at"`
	UpdatedAt rfctime.RFC3339 `json:"updated_at"`
}

// Create is a request body of POST /api/comments/ .
type Create struct {
	PostId  int64  `json:"post"`
	Content string `json:"content"`
}

// Update is a request body of PUT/PATCH /api/comments/:commentId/ .
type Update struct {
	Content *string `json:"content,omitempty"`
}
