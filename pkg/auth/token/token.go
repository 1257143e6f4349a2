// Package token verifies bearer tokens issued by the identity provider.
//
// Tokens are JWS signed with HS256. The subject ("sub") is the user id in decimal.
package token

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier verifies tokens with a shared key.
type Verifier struct {
	key    []byte
	parser *jwt.Parser
}

type config struct {
	issuer   string
	audience string
	leeway   time.Duration
}

type Option func(*config) *config

// WithIssuer requires "iss" to be issuer.
func WithIssuer(issuer string) Option {
	return func(c *config) *config {
		c.issuer = issuer
		return c
	}
}

// WithAudience requires "aud" to contain audience.
func WithAudience(audience string) Option {
	return func(c *config) *config {
		c.audience = audience
		return c
	}
}

// WithLeeway tolerates clock skew on "exp", "nbf" and "iat".
func WithLeeway(d time.Duration) Option {
	return func(c *config) *config {
		c.leeway = d
		return c
	}
}

func NewVerifier(key []byte, options ...Option) (*Verifier, error) {
	if len(key) == 0 {
		return nil, errors.New("empty key")
	}

	c := &config{}
	for _, opt := range options {
		c = opt(c)
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(c.leeway),
	}
	if c.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(c.issuer))
	}
	if c.audience != "" {
		parserOptions = append(parserOptions, jwt.WithAudience(c.audience))
	}

	return &Verifier{key: key, parser: jwt.NewParser(parserOptions...)}, nil
}

// Verify checks the token and returns the user id in it.
//
// # Returns
//
// - int64: user id, from "sub".
//
// - error: ErrInvalidToken wrapping the reason when the token is not acceptable.
func (v *Verifier) Verify(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}); err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}

	userId, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userId <= 0 {
		return 0, fmt.Errorf("%w: subject is not a user id: %q", ErrInvalidToken, claims.Subject)
	}
	return userId, nil
}

// LoadKey reads a shared key from a file.
//
// Leading and trailing whitespaces are removed.
func LoadKey(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := bytes.TrimSpace(b)
	if len(key) == 0 {
		return nil, fmt.Errorf("key file is empty: %s", path)
	}
	return key, nil
}
