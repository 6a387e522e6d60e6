package userservice

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type tokenClaims struct {
	Username string `json:"username"`
	UserID   int    `json:"id"`
	jwt.RegisteredClaims
}

// ExtractToken pulls the raw token out of an Authorization header value.
// A missing header or a non-Bearer scheme yields ErrNoToken; the caller
// decides whether anonymous access is acceptable.
func ExtractToken(header string) (string, error) {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return "", ErrNoToken
	}

	return strings.TrimPrefix(header, prefix), nil
}

func signToken(identity Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: identity.Username,
		UserID:   identity.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks the HS256 signature and expiry of a token and returns
// the identity carried in its claims. Expired tokens are reported distinctly
// from otherwise invalid ones. Pure; no storage lookup.
func VerifyToken(token string, secret []byte) (*Identity, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !parsed.Valid || claims.UserID == 0 || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: claims.UserID, Username: claims.Username}, nil
}
