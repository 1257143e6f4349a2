package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/knitsocial-api-types/errors"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

type ErrorMessageOption func(in *apierr.ErrorMessage) *apierr.ErrorMessage

func WithAdvice(advice string) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if advice != "" {
			in.Advice = advice
		}
		return in
	}
}

func WithCode(code string) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if code != "" {
			in.Code = code
		}
		return in
	}
}

func WithError(err error) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := apierr.ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func NotFound(err error) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found", WithError(err))
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		"bad request",
		WithAdvice(advice),
		WithError(err),
	)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}

func Unauthorized(message string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusUnauthorized,
		message,
		WithAdvice("send a valid token as \"Authorization: Bearer <token>\""),
		WithError(err),
	)
}

func Forbidden(message string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusForbidden,
		message,
		WithError(err),
	)
}

// FromDomainError translates errors from repositories and access predicates to HTTP errors.
//
// Errors not in the domain taxonomy become 500.
func FromDomainError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if herr := new(echo.HTTPError); errors.As(err, &herr) {
		return herr
	}

	if verr := new(kerr.ValidationError); errors.As(err, &verr) {
		return NewErrorMessage(
			http.StatusBadRequest,
			verr.Reason,
			WithCode("invalid"),
			WithAdvice(adviceForField(verr.Field)),
			WithError(err),
		)
	}

	if coded := new(kerr.CodedError); errors.As(err, &coded) {
		return NewErrorMessage(
			http.StatusBadRequest,
			coded.Message,
			WithCode(coded.Code),
			WithError(err),
		)
	}

	switch {
	case errors.Is(err, kerr.ErrUnauthenticated):
		return Unauthorized("authentication required", err)
	case errors.Is(err, kerr.ErrForbidden):
		return Forbidden("you do not have permission to perform this action", err)
	case errors.Is(err, kerr.ErrMissing):
		return NotFound(err)
	}
	return InternalServerError(err)
}

func adviceForField(field string) string {
	if field == "" {
		return ""
	}
	return "check the field \"" + field + "\""
}
