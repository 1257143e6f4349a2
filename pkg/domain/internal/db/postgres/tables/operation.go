package tables

import (
	"context"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
)

// Declare premise of test.
//
// Records are inserted in the order of fields.
type Operation struct {
	Accounts      []Account
	Follows       []Follow
	Posts         []Post
	Comments      []Comment
	Likes         []PostLike
	Notifications []Notification
}

func (op Operation) Apply(ctx context.Context, pool kpool.Pool) error {
	return kpool.InTx(ctx, pool, func(tx kpool.Tx) error {
		tbls := New(ctx, tx)

		for _, a := range op.Accounts {
			if err := tbls.InsertAccount(&a); err != nil {
				return err
			}
		}
		for _, f := range op.Follows {
			if err := tbls.InsertFollow(&f); err != nil {
				return err
			}
		}
		for _, p := range op.Posts {
			if err := tbls.InsertPost(&p); err != nil {
				return err
			}
		}
		for _, c := range op.Comments {
			if err := tbls.InsertComment(&c); err != nil {
				return err
			}
		}
		for _, l := range op.Likes {
			if err := tbls.InsertPostLike(&l); err != nil {
				return err
			}
		}
		for _, n := range op.Notifications {
			if err := tbls.InsertNotification(&n); err != nil {
				return err
			}
		}
		return tbls.syncSequences()
	})
}

// Accounts makes accounts with ids 1, 2, 3... in the order of usernames.
func Accounts(usernames ...string) []Account {
	as := make([]Account, 0, len(usernames))
	for i, name := range usernames {
		as = append(as, Account{
			Id:           int64(i + 1),
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: "(not a hash)",
		})
	}
	return as
}

func Ref[T any](v T) *T {
	return &v
}
