package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"rent2reuse/config"

	"github.com/golang-jwt/jwt"
)

func sessionSecret() []byte {
	secret := config.AppConfig.SessionSecret
	if secret == "" {
		secret = "rent2reuse-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed session token for an authenticated admin.
// The token expires after the specified duration.
func GenerateToken(uid, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// HashToken computes a SHA-256 hash of the token string. Only the hash is
// persisted, so a leaked cache never exposes a usable token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a session token and returns the subject
// uid and email claims.
func ValidateToken(tokenString string) (uid string, email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	uid, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	if uid == "" {
		return "", "", errors.New("token missing subject")
	}
	return uid, email, nil
}
