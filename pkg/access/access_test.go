package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/opst/knitsocial/pkg/access"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func TestActor(t *testing.T) {
	t.Run("zero value is anonymous", func(t *testing.T) {
		var a access.Actor
		if !a.IsAnonymous() {
			t.Error("not anonymous")
		}
		if _, ok := a.Id(); ok {
			t.Error("anonymous has id")
		}
	})

	t.Run("context without actor gives anonymous", func(t *testing.T) {
		if !access.ActorFrom(context.Background()).IsAnonymous() {
			t.Error("not anonymous")
		}
	})

	t.Run("context carries actor", func(t *testing.T) {
		ctx := access.WithActor(context.Background(), access.User(42))
		id, ok := access.ActorFrom(ctx).Id()
		if !ok || id != 42 {
			t.Errorf("unexpected actor: (%d, %v)", id, ok)
		}
	})
}

func TestCheck(t *testing.T) {
	type When struct {
		actor      access.Actor
		predicates []access.Predicate
	}

	theory := func(when When, then error) func(*testing.T) {
		return func(t *testing.T) {
			err := access.Check(when.actor, when.predicates...)
			if then == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, then) {
				t.Errorf("unexpected error: %v (want %v)", err, then)
			}
		}
	}

	t.Run("anyone may read", theory(
		When{actor: access.Anonymous(), predicates: []access.Predicate{access.Anyone}}, nil,
	))
	t.Run("no predicates allow", theory(
		When{actor: access.Anonymous()}, nil,
	))
	t.Run("anonymous may not create", theory(
		When{actor: access.Anonymous(), predicates: []access.Predicate{access.Authenticated}},
		kerr.ErrUnauthenticated,
	))
	t.Run("user may create", theory(
		When{actor: access.User(1), predicates: []access.Predicate{access.Authenticated}}, nil,
	))
	t.Run("owner may update", theory(
		When{actor: access.User(1), predicates: []access.Predicate{access.Authenticated, access.OwnerOf(1)}}, nil,
	))
	t.Run("other user may not update", theory(
		When{actor: access.User(2), predicates: []access.Predicate{access.Authenticated, access.OwnerOf(1)}},
		kerr.ErrForbidden,
	))
	t.Run("anonymous may not update, and is told to authenticate", theory(
		When{actor: access.Anonymous(), predicates: []access.Predicate{access.OwnerOf(1)}},
		kerr.ErrUnauthenticated,
	))
	t.Run("the first rejection wins", theory(
		When{
			actor: access.User(2),
			predicates: []access.Predicate{
				access.OwnerOf(1),
				func(access.Actor) error { return kerr.ErrMissing },
			},
		},
		kerr.ErrForbidden,
	))
}
