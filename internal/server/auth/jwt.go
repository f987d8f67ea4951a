// Package auth signs and verifies the stateless session tokens issued at
// signup and login. Tokens are HS256 JWTs carrying the account id; validity
// is purely cryptographic plus expiry, nothing is stored server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamify-app/auth-server/internal/common"
)

// Claims extends the registered JWT claims with the account identifier the
// token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
}

// GenerateToken signs a session token for the given account id with the
// server secret. The token carries issued-at and expiry claims; the expiry is
// validityDuration from now.
func GenerateToken(accountID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAccountIDFromToken verifies the token signature and expiry and returns
// the account id it was issued for. Expired tokens yield
// common.ErrTokenExpired; any other verification failure yields
// common.ErrInvalidToken.
func GetAccountIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
