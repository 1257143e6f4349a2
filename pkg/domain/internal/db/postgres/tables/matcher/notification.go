package matcher

import (
	"fmt"
	"time"

	"github.com/opst/knitsocial/pkg/domain/internal/db/postgres/tables"
)

type Notification struct {
	RecipientId Matcher[int64]
	ActorId     Matcher[int64]
	Verb        Matcher[string]
	TargetType  Matcher[*string]
	TargetId    Matcher[*int64]
	Timestamp   Matcher[time.Time]
	Read        Matcher[bool]
}

func (n Notification) Match(actual tables.Notification) bool {
	return n.RecipientId.Match(actual.RecipientId) &&
		n.ActorId.Match(actual.ActorId) &&
		n.Verb.Match(actual.Verb) &&
		n.TargetType.Match(actual.TargetType) &&
		n.TargetId.Match(actual.TargetId) &&
		n.Timestamp.Match(actual.Timestamp) &&
		n.Read.Match(actual.Read)
}

func (n Notification) String() string {
	return fmt.Sprintf(
		"{RecipientId:%s ActorId:%s Verb:%s TargetType:%s TargetId:%s Timestamp:%s Read:%s}",
		n.RecipientId, n.ActorId, n.Verb, n.TargetType, n.TargetId, n.Timestamp, n.Read,
	)
}

func (n Notification) Format(s fmt.State, _ rune) {
	fmt.Fprint(s, n.String())
}

// NotificationsMatch tells whether actual notifications match ms one by one, in order.
func NotificationsMatch(ms []Notification, actual []tables.Notification) bool {
	if len(ms) != len(actual) {
		return false
	}
	for i := range ms {
		if !ms[i].Match(actual[i]) {
			return false
		}
	}
	return true
}
