package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// HashPassword produces a salted bcrypt digest of the password. The digest
// embeds the cost and salt, so verification needs no extra state.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", common.ErrorValidation
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only hashes the first 72 bytes; longer input is rejected.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.ErrorValidation
		}
		return "", err
	}

	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest. A
// malformed digest yields false, the same as a wrong password.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
