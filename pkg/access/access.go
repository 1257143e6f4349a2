// Package access decides who may do what.
//
// Handlers compose predicates explicitly before touching repositories:
//
//	if err := access.Check(actor, access.Authenticated, access.OwnerOf(post.Author.Id)); err != nil {
//		return err
//	}
package access

import (
	"context"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

// Actor is who is requesting. The zero value is anonymous.
type Actor struct {
	id            int64
	authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

// User is an authenticated actor.
func User(id int64) Actor {
	return Actor{id: id, authenticated: true}
}

// Id returns the user id of the actor. ok is false for anonymous.
func (a Actor) Id() (id int64, ok bool) {
	return a.id, a.authenticated
}

func (a Actor) IsAnonymous() bool {
	return !a.authenticated
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor in ctx, or Anonymous when ctx has none.
func ActorFrom(ctx context.Context) Actor {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok {
		return Anonymous()
	}
	return a
}

// Predicate tells whether an actor is allowed. nil means allowed.
type Predicate func(Actor) error

// Anyone allows everyone, including anonymous.
func Anyone(Actor) error {
	return nil
}

// Authenticated rejects anonymous with ErrUnauthenticated.
func Authenticated(a Actor) error {
	if a.IsAnonymous() {
		return kerr.ErrUnauthenticated
	}
	return nil
}

// OwnerOf allows only the user ownerId.
//
// Anonymous gets ErrUnauthenticated, other users get ErrForbidden.
func OwnerOf(ownerId int64) Predicate {
	return func(a Actor) error {
		if err := Authenticated(a); err != nil {
			return err
		}
		if a.id != ownerId {
			return kerr.ErrForbidden
		}
		return nil
	}
}

// All allows when every predicate allows. The first rejection is returned.
func All(ps ...Predicate) Predicate {
	return func(a Actor) error {
		for _, p := range ps {
			if err := p(a); err != nil {
				return err
			}
		}
		return nil
	}
}

// Check evaluates All(ps...) for the actor.
func Check(a Actor, ps ...Predicate) error {
	return All(ps...)(a)
}
