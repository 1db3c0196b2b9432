package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether tokenStr is a JWT whose exp claim is not after now.
// The signature is not checked: the dashboard never holds the server's secret, it only
// needs to know when to stop sending a dead token. Opaque tokens report false.
func TokenExpired(tokenStr string, now time.Time) bool {
	if tokenStr == "" {
		return false
	}
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, &jwt.RegisteredClaims{})
	if err != nil || token == nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

// GenerateJWT signs an HS256 token for subject that expires after ttl. A negative
// ttl yields an already expired token.
func GenerateJWT(subject string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
