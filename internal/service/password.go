package service

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword genera un hash bcrypt con salt propio.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara un texto plano contra su hash bcrypt.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
