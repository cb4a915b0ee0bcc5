package cryptox

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// MintToken issues the opaque session token for userID. The token is an
// HS256 JWT carrying only the subject and the issue instant, so the same
// (userID, issuedAt, secret) always yields the same token.
func MintToken(userID string, issuedAt time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(issuedAt),
	})

	s, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// ParseToken returns the subject and issue instant of a token produced by
// MintToken. It fails with common.ErrInvalidToken when the signature or the
// claims do not check out.
func ParseToken(tokenString string, secret []byte) (string, time.Time, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", time.Time{}, errors.Join(common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return "", time.Time{}, common.ErrInvalidToken
	}

	return claims.Subject, claims.IssuedAt.Time, nil
}
