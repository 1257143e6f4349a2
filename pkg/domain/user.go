package domain

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxNameLength     = 150
	MaxBioLength      = 500
	MinPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9@.+_-]+$`)

// UserSummary identifies a user in other entities.
type UserSummary struct {
	Id       int64
	Username string
}

type User struct {
	UserSummary
	Email          string
	FirstName      string
	LastName       string
	Bio            string
	ProfilePicture *string
	DateJoined     time.Time
}

// Profile is a user with their neighbours in the social graph.
type Profile struct {
	User

	FollowersCount int
	FollowingCount int

	// ids of users following this user, ascending.
	Followers []int64

	// ids of users this user is following, ascending.
	Following []int64
}

// PasswordHasher turns a plain password into an opaque hash.
type PasswordHasher func(password string) (string, error)

// UserParam is a request to register a user.
type UserParam struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	Bio             string
	ProfilePicture  *string
}

// UserSpec is a validated UserParam. The password in it is hashed.
type UserSpec struct {
	username       string
	email          string
	passwordHash   string
	firstName      string
	lastName       string
	bio            string
	profilePicture *string
}

func (s *UserSpec) Username() string        { return s.username }
func (s *UserSpec) Email() string           { return s.email }
func (s *UserSpec) PasswordHash() string    { return s.passwordHash }
func (s *UserSpec) FirstName() string       { return s.firstName }
func (s *UserSpec) LastName() string        { return s.lastName }
func (s *UserSpec) Bio() string             { return s.bio }
func (s *UserSpec) ProfilePicture() *string { return s.profilePicture }

// Validate checks the param and hashes the password with hash.
//
// # Returns
//
// - *UserSpec: validated spec.
//
// - error: ErrValidation, or an error from hash.
func (p UserParam) Validate(hash PasswordHasher) (*UserSpec, error) {
	username := strings.TrimSpace(p.Username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	email, err := validateEmail(p.Email)
	if err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(p.Password) < MinPasswordLength {
		return nil, kerr.NewValidationError(
			"password", fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		)
	}
	if p.Password != p.PasswordConfirm {
		return nil, kerr.NewValidationError("password", "passwords do not match")
	}

	if err := validateLength("first_name", p.FirstName, MaxNameLength); err != nil {
		return nil, err
	}
	if err := validateLength("last_name", p.LastName, MaxNameLength); err != nil {
		return nil, err
	}
	if err := validateLength("bio", p.Bio, MaxBioLength); err != nil {
		return nil, err
	}

	hashed, err := hash(p.Password)
	if err != nil {
		return nil, err
	}

	return &UserSpec{
		username:       username,
		email:          email,
		passwordHash:   hashed,
		firstName:      p.FirstName,
		lastName:       p.LastName,
		bio:            p.Bio,
		profilePicture: emptyAsNil(p.ProfilePicture),
	}, nil
}

// ProfileUpdate is a request to change a profile. nil fields are left unchanged.
//
// Username and password cannot be changed with this.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string

	// empty string removes the picture.
	ProfilePicture *string
}

// ProfileChange is a validated ProfileUpdate.
type ProfileChange struct {
	email          *string
	firstName      *string
	lastName       *string
	bio            *string
	profilePicture *string
}

func (c *ProfileChange) Email() *string     { return c.email }
func (c *ProfileChange) FirstName() *string { return c.firstName }
func (c *ProfileChange) LastName() *string  { return c.lastName }
func (c *ProfileChange) Bio() *string       { return c.bio }

// ProfilePicture returns (new value, true) when the picture is to be changed.
//
// A nil new value means removal.
func (c *ProfileChange) ProfilePicture() (*string, bool) {
	if c.profilePicture == nil {
		return nil, false
	}
	return emptyAsNil(c.profilePicture), true
}

func (u ProfileUpdate) Validate() (*ProfileChange, error) {
	change := &ProfileChange{
		firstName:      u.FirstName,
		lastName:       u.LastName,
		bio:            u.Bio,
		profilePicture: u.ProfilePicture,
	}

	if u.Email != nil {
		email, err := validateEmail(*u.Email)
		if err != nil {
			return nil, err
		}
		change.email = &email
	}
	if u.FirstName != nil {
		if err := validateLength("first_name", *u.FirstName, MaxNameLength); err != nil {
			return nil, err
		}
	}
	if u.LastName != nil {
		if err := validateLength("last_name", *u.LastName, MaxNameLength); err != nil {
			return nil, err
		}
	}
	if u.Bio != nil {
		if err := validateLength("bio", *u.Bio, MaxBioLength); err != nil {
			return nil, err
		}
	}
	return change, nil
}

// UserQuery selects users. Users are ordered by date joined, newest first.
type UserQuery struct {
	Pagination Pagination
}

func validateUsername(username string) error {
	if username == "" {
		return kerr.NewValidationError("username", "this field is required")
	}
	if err := validateLength("username", username, MaxUsernameLength); err != nil {
		return err
	}
	if !usernamePattern.MatchString(username) {
		return kerr.NewValidationError(
			"username", "may contain only letters, numbers, and @/./+/-/_ characters",
		)
	}
	return nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", kerr.NewValidationError("email", "this field is required")
	}
	if err := validateLength("email", email, MaxEmailLength); err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", kerr.NewValidationError("email", "enter a valid email address")
	}
	return email, nil
}

func validateLength(field, value string, limit int) error {
	if limit < utf8.RuneCountInString(value) {
		return kerr.NewValidationError(
			field, fmt.Sprintf("ensure this field has no more than %d characters", limit),
		)
	}
	return nil
}

func emptyAsNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
