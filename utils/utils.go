package utils

import (
	"golang.org/x/crypto/bcrypt"

	"casinohub/config"
)

// HashPassword hashes a plaintext password with bcrypt. The output is
// salted, so hashing the same password twice yields different strings
// that both verify.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
