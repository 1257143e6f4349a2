// Package mocks has helpers shared by repository mocks.
package mocks

import "errors"

// CallLog records arguments of each call to a mocked method.
type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

// Last returns the arguments of the latest call.
//
// It panics when no calls are recorded.
func (l CallLog[T]) Last() T {
	return l[len(l)-1]
}

// ErrNotImplemented is the panic value of mocked methods without Impl.
var ErrNotImplemented = errors.New("should not be called")
