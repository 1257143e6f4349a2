package notifications

import "github.com/opst/knitsocial-api-types/misc/rfctime"

type Detail struct {
	Id          int64  `json:"id"`
	Recipient   string `json:"recipient"`
	RecipientId int64  `json:"recipient_id"`
	Actor       string `json:"actor"`
	ActorId     int64  `json:"actor_id"`
	Verb        string `json:"verb"`

	// "post", "comment" or "user". Both target fields are null when it is about nothing.
	TargetType *string `json:"target_type"`
	TargetId   *int64  `json:"target_id"`

	Timestamp rfctime.RFC3339 `json:"timestamp"`
	Read      bool            `json:"read"`
}

// MarkedRead is a response of POST /api/notifications/:notificationId/read/ .
type MarkedRead struct {
	Message      string `json:"message"`
	Notification Detail `json:"notification"`
}

// MarkedAllRead is a response of POST /api/notifications/mark-all-read/ .
type MarkedAllRead struct {
	Message string `json:"message"`

	// how many notifications are switched to read.
	Count int `json:"count"`
}

// Unread is a response of GET /api/notifications/unread-count/ .
type Unread struct {
	Count int `json:"unread"`
}
