package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Password hashing cost
const BcryptCost = 12

// HashPassword hashes a plaintext password. Plaintext is never persisted.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against its hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
