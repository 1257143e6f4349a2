package notifications

import (
	"github.com/opst/knitsocial-api-types/misc/rfctime"
	apinotifications "github.com/opst/knitsocial-api-types/notifications"
	"github.com/opst/knitsocial/pkg/domain"
)

func ComposeDetail(n domain.Notification) apinotifications.Detail {
	d := apinotifications.Detail{
		Id:          n.Id,
		Recipient:   n.Recipient.Username,
		RecipientId: n.Recipient.Id,
		Actor:       n.Actor.Username,
		ActorId:     n.Actor.Id,
		Verb:        n.Verb,
		Timestamp:   rfctime.RFC3339(n.Timestamp),
		Read:        n.Read,
	}

	if n.Target != nil {
		typ := string(n.Target.Kind())
		id := n.Target.TargetId()
		d.TargetType = &typ
		d.TargetId = &id
	}
	return d
}
