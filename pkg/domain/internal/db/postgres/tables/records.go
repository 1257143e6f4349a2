package tables

import "time"

// golang representation of records of PostgreSQL tables.
//
// Ids are given explicitly, so that tests can refer them.

type Account struct {
	Id             int64
	Username       string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	Bio            string
	ProfilePicture *string
	DateJoined     time.Time // zero means now
}

type Follow struct {
	FollowerId int64
	FolloweeId int64
}

type Post struct {
	Id        int64
	AuthorId  int64
	Title     string
	Content   string
	CreatedAt time.Time // zero means now
	UpdatedAt time.Time // zero means CreatedAt
}

type Comment struct {
	Id        int64
	PostId    int64
	AuthorId  int64
	Content   string
	CreatedAt time.Time // zero means now
	UpdatedAt time.Time // zero means CreatedAt
}

type PostLike struct {
	UserId int64
	PostId int64
}

type Notification struct {
	Id          int64
	RecipientId int64
	ActorId     int64
	Verb        string
	TargetType  *string
	TargetId    *int64
	Timestamp   time.Time
	Read        bool
}
