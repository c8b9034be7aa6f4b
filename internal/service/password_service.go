package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifierInterface hides the hashing primitive from the auth
// usecase.
type PasswordVerifierInterface interface {
	// Verify returns nil when password matches hash.
	Verify(hash string, password string) error
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// HashPassword produces a bcrypt hash suitable for the COACHES_JSON
// credential table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
