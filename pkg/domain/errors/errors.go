// Package errors defines errors shared by every domain of knitsocial.
//
// Callers should test them with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// requested entity is not found, or it is hidden from the actor.
	ErrMissing = errors.New("missing")

	// the request is malformed. Unwrapped value is a *ValidationError.
	ErrValidation = errors.New("validation failed")

	// the operation needs an authenticated actor.
	ErrUnauthenticated = errors.New("authentication required")

	// the actor is authenticated, but not allowed.
	ErrForbidden = errors.New("forbidden")

	// the operation is rejected by the current state of the social graph.
	//
	// All coded errors below are ErrRejected.
	ErrRejected = errors.New("rejected")
)

var (
	ErrSelfFollow       = newCoded("self_follow", "you cannot follow yourself")
	ErrAlreadyFollowing = newCoded("already_following", "you are already following this user")
	ErrNotFollowing     = newCoded("not_following", "you are not following this user")
	ErrAlreadyLiked     = newCoded("already_liked", "you have already liked this post")
	ErrNotLiked         = newCoded("not_liked", "you have not liked this post")
	ErrUsernameTaken    = newCoded("username_taken", "a user with that username already exists")
	ErrEmailTaken       = newCoded("email_taken", "a user with that email already exists")
)

// CodedError is a rejection with a machine-readable code.
type CodedError struct {
	Code    string
	Message string
}

func newCoded(code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

func (c *CodedError) Error() string {
	return c.Message
}

func (c *CodedError) Unwrap() error {
	return ErrRejected
}

// ValidationError tells which field is wrong and why.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns an error which is ErrValidation.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (v *ValidationError) Error() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, v.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, v.Field, v.Reason)
}

func (v *ValidationError) Unwrap() error {
	return ErrValidation
}
