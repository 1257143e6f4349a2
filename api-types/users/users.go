package users

import "github.com/opst/knitsocial-api-types/misc/rfctime"

type Detail struct {
	Id             int64           `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Bio            string          `json:"bio"`
	ProfilePicture *string         `json:"profile_picture"`
	DateJoined     rfctime.RFC3339 `json:"date_joined"`
}

// Profile is a user with their neighbours in the social graph.
type Profile struct {
	Detail

	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`

	// user ids, ascending.
	Followers []int64 `json:"followers"`
	Following []int64 `json:"following"`
}

// Registration is a request body of POST /api/register/ .
type Registration struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
	FirstName       string  `json:"first_name,omitempty"`
	LastName        string  `json:"last_name,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	ProfilePicture  *string `json:"profile_picture,omitempty"`
}

// Registered is a response of POST /api/register/ .
type Registered struct {
	User    Detail `json:"user"`
	Message string `json:"message"`
}

// ProfileUpdate is a request body of PUT/PATCH /api/profile/ .
//
// Absent fields are not changed. Empty profile_picture removes the picture.
type ProfileUpdate struct {
	Email          *string `json:"email,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
