package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func fakeHash(password string) (string, error) {
	return "hashed:" + password, nil
}

func validParam() domain.UserParam {
	return domain.UserParam{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
		Bio:             "hello",
	}
}

func TestUserParam_Validate(t *testing.T) {
	t.Run("it accepts valid param and hashes the password", func(t *testing.T) {
		picture := "avatars/alice.png"
		param := validParam()
		param.ProfilePicture = &picture
		param.FirstName = "Alice"

		spec, err := param.Validate(fakeHash)
		if err != nil {
			t.Fatal(err)
		}
		if spec.Username() != "alice" || spec.Email() != "alice@example.com" {
			t.Errorf("unmatch: %+v", spec)
		}
		if spec.PasswordHash() != "hashed:password123" {
			t.Errorf("password is not hashed: %s", spec.PasswordHash())
		}
		if spec.FirstName() != "Alice" || spec.Bio() != "hello" {
			t.Errorf("unmatch: %+v", spec)
		}
		if p := spec.ProfilePicture(); p == nil || *p != picture {
			t.Errorf("unmatch picture: %v", p)
		}
	})

	t.Run("empty profile picture is treated as absent", func(t *testing.T) {
		empty := ""
		param := validParam()
		param.ProfilePicture = &empty
		spec, err := param.Validate(fakeHash)
		if err != nil {
			t.Fatal(err)
		}
		if spec.ProfilePicture() != nil {
			t.Errorf("picture is not nil: %v", *spec.ProfilePicture())
		}
	})

	for name, testcase := range map[string]struct {
		modify func(*domain.UserParam)
		field  string
	}{
		"it rejects empty username": {
			modify: func(p *domain.UserParam) { p.Username = "" },
			field:  "username",
		},
		"it rejects username with forbidden characters": {
			modify: func(p *domain.UserParam) { p.Username = "alice smith" },
			field:  "username",
		},
		"it rejects too long username": {
			modify: func(p *domain.UserParam) { p.Username = strings.Repeat("a", 151) },
			field:  "username",
		},
		"it rejects empty email": {
			modify: func(p *domain.UserParam) { p.Email = "" },
			field:  "email",
		},
		"it rejects malformed email": {
			modify: func(p *domain.UserParam) { p.Email = "not an email" },
			field:  "email",
		},
		"it rejects short password": {
			modify: func(p *domain.UserParam) { p.Password, p.PasswordConfirm = "short", "short" },
			field:  "password",
		},
		"it rejects mismatched password confirmation": {
			modify: func(p *domain.UserParam) { p.PasswordConfirm = "password124" },
			field:  "password",
		},
		"it rejects too long bio": {
			modify: func(p *domain.UserParam) { p.Bio = strings.Repeat("b", 501) },
			field:  "bio",
		},
	} {
		t.Run(name, func(t *testing.T) {
			param := validParam()
			testcase.modify(&param)

			hashed := false
			_, err := param.Validate(func(s string) (string, error) {
				hashed = true
				return s, nil
			})

			verr := new(kerr.ValidationError)
			if !errors.As(err, &verr) {
				t.Fatalf("not ValidationError: %v", err)
			}
			if verr.Field != testcase.field {
				t.Errorf("unmatch field: %s (want %s)", verr.Field, testcase.field)
			}
			if hashed {
				t.Error("password is hashed though the param is invalid")
			}
		})
	}

	t.Run("it accepts username with all allowed symbols", func(t *testing.T) {
		param := validParam()
		param.Username = "a.b+c-d_e@f"
		if _, err := param.Validate(fakeHash); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it returns the error of hasher", func(t *testing.T) {
		expected := errors.New("fake error")
		_, err := validParam().Validate(func(string) (string, error) { return "", expected })
		if !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestProfileUpdate_Validate(t *testing.T) {
	ptr := func(s string) *string { return &s }

	t.Run("nil fields are left unchanged", func(t *testing.T) {
		change, err := domain.ProfileUpdate{Bio: ptr("new bio")}.Validate()
		if err != nil {
			t.Fatal(err)
		}
		if change.Email() != nil || change.FirstName() != nil || change.LastName() != nil {
			t.Errorf("unexpected change: %+v", change)
		}
		if b := change.Bio(); b == nil || *b != "new bio" {
			t.Errorf("unmatch bio: %v", b)
		}
		if _, ok := change.ProfilePicture(); ok {
			t.Error("profile picture is to be changed")
		}
	})

	t.Run("empty profile picture removes it", func(t *testing.T) {
		change, err := domain.ProfileUpdate{ProfilePicture: ptr("")}.Validate()
		if err != nil {
			t.Fatal(err)
		}
		if p, ok := change.ProfilePicture(); !ok || p != nil {
			t.Errorf("unmatch: (%v, %v)", p, ok)
		}
	})

	t.Run("it rejects malformed email", func(t *testing.T) {
		_, err := domain.ProfileUpdate{Email: ptr("nope")}.Validate()
		if !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it rejects too long names", func(t *testing.T) {
		_, err := domain.ProfileUpdate{LastName: ptr(strings.Repeat("x", 151))}.Validate()
		if !errors.Is(err, kerr.ErrValidation) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
