package posts

import (
	"github.com/opst/knitsocial-api-types/misc/rfctime"
	apiposts "github.com/opst/knitsocial-api-types/posts"
	bindcomments "github.com/opst/knitsocial/pkg/api-types-binding/comments"
	"github.com/opst/knitsocial/pkg/domain"
	"github.com/opst/knitsocial/pkg/utils"
)

func ComposeSummary(p domain.Post) apiposts.Summary {
	return apiposts.Summary{
		Id:           p.Id,
		Author:       p.Author.Username,
		AuthorId:     p.Author.Id,
		Title:        p.Title,
		Content:      p.Content,
		CreatedAt:    rfctime.RFC3339(p.CreatedAt),
		UpdatedAt:    rfctime.RFC3339(p.UpdatedAt),
		CommentCount: p.CommentCount,
		LikeCount:    p.LikeCount,
	}
}

// ComposeDetail composes a post with comments.
//
// Comments should be fetched with the post. Otherwise, comments are empty.
func ComposeDetail(p domain.Post) apiposts.Detail {
	return apiposts.Detail{
		Summary:  ComposeSummary(p),
		Comments: utils.Map(p.Comments, bindcomments.ComposeDetail),
	}
}
