package comments

import (
	apicomments "github.com/opst/knitsocial-api-types/comments"
	"github.com/opst/knitsocial-api-types/misc/rfctime"
	"github.com/opst/knitsocial/pkg/domain"
)

func ComposeDetail(c domain.Comment) apicomments.Detail {
	return apicomments.Detail{
		Id:        c.Id,
		PostId:    c.PostId,
		Author:    c.Author.Username,
		AuthorId:  c.Author.Id,
		Content:   c.Content,
		CreatedAt: rfctime.RFC3339(c.CreatedAt),
		UpdatedAt: rfctime.RFC3339(c.UpdatedAt),
	}
}
