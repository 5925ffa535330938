package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

// ComparePassword checks a plaintext password against the stored bcrypt hash.
// Admin accounts are provisioned with pre-hashed passwords, so only the
// compare direction is needed at runtime.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
