package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength is the length of session and share tokens.
const TokenLength = 64

func HashPassword(password string) (hashedPassword string, err error) {
	pwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("HashPassword error: %w", err)
	}

	return string(pwd), nil
}

func CheckPasswordHash(password string, hash string) (isValid bool) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false
	}
	return true
}

// GenerateToken returns a random alphanumeric string of the given length,
// read from crypto/rand. 64 characters over a 62-symbol alphabet gives far
// more entropy than needed to make collisions on the primary key implausible.
func GenerateToken(length int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("GenerateToken error: %w", err)
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
