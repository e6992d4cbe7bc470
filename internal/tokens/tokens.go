package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTTL bounds the stale-trust window: a token stays valid for its whole
// lifetime even if the account behind it is deleted.
const AccessTTL = time.Hour

type AccessClaims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     int    `json:"role"`
	jwt.RegisteredClaims
}

// SignAccessToken issues an HS256 token embedding the identity claims. The
// expiry is passed in so callers control the clock.
func SignAccessToken(userID uuid.UUID, email, username string, role int, exp time.Time, secret []byte) (string, error) {
	claims := AccessClaims{
		UserID:   userID.String(),
		Email:    email,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

var ErrInvalidToken = errors.New("invalid token")

// AccessClaimsFromToken validates signature and expiry and returns the
// embedded claims. Any failure collapses into ErrInvalidToken.
func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
