package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"aide/config"

	"github.com/golang-jwt/jwt"
)

// GenerateToken creates a signed session JWT for the given user email and
// display name. The token expires after the specified duration.
func GenerateToken(email, name string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractEmailFromToken extracts the subject (user email) and display name
// from a valid session token.
func ExtractEmailFromToken(tokenString string) (string, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}

	name, _ := claims["name"].(string)
	return sub, name, nil
}
