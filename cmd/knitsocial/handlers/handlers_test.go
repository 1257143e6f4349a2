package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/knitsocial-api-types/errors"
	"github.com/opst/knitsocial/pkg/domain"
)

// assertHTTPError checks that err is *echo.HTTPError with the status, and returns its message.
func assertHTTPError(t *testing.T, err error, status int) apierr.ErrorMessage {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, but nil", status)
	}
	var herr *echo.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
	}
	if herr.Code != status {
		t.Fatalf("unmatch error code:%d, expected:%d (%v)", herr.Code, status, herr)
	}
	msg, _ := herr.Message.(apierr.ErrorMessage)
	return msg
}

// decode checks the response is JSON with the status, and decodes it.
func decode[T any](t *testing.T, resp *httptest.ResponseRecorder, status int) T {
	t.Helper()
	if resp.Code != status {
		t.Fatalf("status code %d != %d", resp.Code, status)
	}
	if ctype := strings.Split(resp.Header().Get("Content-Type"), ";")[0]; ctype != "application/json" {
		t.Fatalf("Content-Type: %s", ctype)
	}
	var v T
	if err := json.Unmarshal(resp.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not a JSON: %v\n%s", err, resp.Body.String())
	}
	return v
}

var (
	alice = domain.UserSummary{Id: 1, Username: "alice"}
	bob   = domain.UserSummary{Id: 2, Username: "bob"}

	t0 = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
)

func ref[T any](v T) *T {
	return &v
}
