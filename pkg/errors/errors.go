// Package errors provides an error wrapper which remembers where it is wrapped.
//
// Usage:
//
//	if err != nil {
//		return xe.Wrap(err)
//	}
//
// The message of a wrapped error looks like
//
//	@ funcname "file" l123 <- cause
//
// so chained wrappers read as a trace from outer to inner.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

type frame struct {
	funcname string
	file     string
	line     int
}

// callerOf returns the frame `skip` levels above the caller of callerOf.
func callerOf(skip int) frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return frame{funcname: "(unknown func)", file: "?", line: -1}
	}
	f := frame{funcname: "(unknown func)", file: file, line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.funcname = fn.Name()
	}
	return f
}

type withCaller struct {
	at   frame
	note string
	err  error
}

func (e *withCaller) Error() string {
	at := fmt.Sprintf(`@ %s "%s" l%d`, e.at.funcname, e.at.file, e.at.line)
	if e.note != "" {
		at += " (" + e.note + ")"
	}
	return at + " <- " + e.err.Error()
}

func (e *withCaller) Unwrap() error {
	return e.err
}

// New creates an error with message, marked with the caller.
func New(text string) error {
	return &withCaller{at: callerOf(1), err: errors.New(text)}
}

// Wrap marks err with the caller. nil is passed through.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &withCaller{at: callerOf(1), err: err}
}

// WrapWithNote marks err with the caller and a note.
func WrapWithNote(note string, err error) error {
	if err == nil {
		return nil
	}
	return &withCaller{at: callerOf(1), note: note, err: err}
}
