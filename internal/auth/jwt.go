// Package auth issues and validates the signed session tokens minted at
// login. Tokens carry the user id and an expiry; they never carry key
// material.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pratikshau1/vaultnotes/internal/common"
)

// Claims extends the registered JWT claims with the VaultNotes user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256-signed token for userID that expires after
// validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies the token signature and expiry and returns the
// embedded user id. An expired token maps to common.ErrSessionExpired; any
// other validation failure is returned as-is.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrSessionExpired
		}
		return "", err
	}
	if !token.Valid {
		return "", common.ErrSessionExpired
	}

	return claims.UserID, nil
}
