// Package password hashes passwords of users.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/opst/knitsocial/pkg/domain"
)

// Hash hashes password with bcrypt of the default cost.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var _ domain.PasswordHasher = Hash

// Verify tells whether password matches hash.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
