package errors

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrorMessage is the body of error responses.
type ErrorMessage struct {
	Reason string `json:"reason"`

	// machine-readable reason. Empty for generic errors like "not found".
	Code string `json:"code,omitempty"`

	Advice string `json:"advice,omitempty"`

	// Cause is what caused this, for server side logs. It is not sent.
	Cause error `json:"-"`
}

// wireMessage is ErrorMessage without methods, to be decoded by the default way.
type wireMessage struct {
	Reason *string `json:"reason"`
	Code   string  `json:"code"`
	Advice string  `json:"advice"`
}

func (em *ErrorMessage) UnmarshalJSON(b []byte) error {
	var w wireMessage
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Reason == nil {
		return errors.New(`required field missing: "reason"`)
	}

	*em = ErrorMessage{Reason: *w.Reason, Code: w.Code, Advice: w.Advice}
	return nil
}

func (e ErrorMessage) String() string {
	b := new(strings.Builder)
	b.WriteString(e.Reason)
	if e.Code != "" {
		b.WriteString(" (" + e.Code + ")")
	}
	if e.Advice != "" {
		b.WriteString("\n" + e.Advice)
	}
	if e.Cause != nil {
		b.WriteString("\n caused by: " + e.Cause.Error())
	}
	return b.String()
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}
