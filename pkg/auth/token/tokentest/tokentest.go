// Package tokentest issues tokens for tests, as the identity provider does.
package tokentest

import (
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims makes claims for the user, expiring after ttl.
func Claims(userId int64, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(userId, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// Sign signs claims with HS256.
func Sign(key []byte, claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// For returns a token of the user valid for an hour.
//
// It panics when signing failed.
func For(key []byte, userId int64) string {
	tok, err := Sign(key, Claims(userId, time.Hour))
	if err != nil {
		panic(err)
	}
	return tok
}
