package matcher

import "fmt"

type Matcher[T any] interface {
	Match(T) bool
	String() string
}

type anyMatcher[T any] struct{}

func Any[T any]() Matcher[T]                       { return anyMatcher[T]{} }
func (a anyMatcher[T]) Match(T) bool               { return true }
func (a anyMatcher[T]) String() string             { return "(match any)" }
func (a anyMatcher[T]) Format(s fmt.State, _ rune) { fmt.Fprint(s, a.String()) }

type eqeq[T comparable] struct{ v T }

func EqEq[T comparable](v T) Matcher[T]      { return eqeq[T]{v: v} }
func (e eqeq[T]) Match(t T) bool             { return t == e.v }
func (e eqeq[T]) String() string             { return fmt.Sprintf("%+v", e.v) }
func (e eqeq[T]) Format(s fmt.State, _ rune) { fmt.Fprint(s, e.String()) }

type ptrEq[T comparable] struct{ v *T }

// PtrEq matches pointers pointing equal values, or both nil.
func PtrEq[T comparable](v *T) Matcher[*T] { return ptrEq[T]{v: v} }
func (p ptrEq[T]) Match(t *T) bool {
	if p.v == nil || t == nil {
		return p.v == nil && t == nil
	}
	return *p.v == *t
}
func (p ptrEq[T]) String() string {
	if p.v == nil {
		return "(nil)"
	}
	return fmt.Sprintf("&%+v", *p.v)
}
func (p ptrEq[T]) Format(s fmt.State, _ rune) { fmt.Fprint(s, p.String()) }
