package accounts

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The cost factor comes from configuration, not from the call site.
func HashPassword(password []byte, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the candidate password matches the stored
// hash. bcrypt recomputes the hash and compares without early exit, so the
// comparison does not leak where the mismatch occurred.
func CheckPassword(hash string, candidate []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), candidate) == nil
}
