package users

import (
	apiusers "github.com/opst/knitsocial-api-types/users"
	"github.com/opst/knitsocial-api-types/misc/rfctime"
	"github.com/opst/knitsocial/pkg/domain"
)

func ComposeDetail(u domain.User) apiusers.Detail {
	return apiusers.Detail{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		DateJoined:     rfctime.RFC3339(u.DateJoined),
	}
}

func ComposeProfile(p domain.Profile) apiusers.Profile {
	followers := p.Followers
	if followers == nil {
		followers = []int64{}
	}
	following := p.Following
	if following == nil {
		following = []int64{}
	}
	return apiusers.Profile{
		Detail:         ComposeDetail(p.User),
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		Followers:      followers,
		Following:      following,
	}
}
