// Package jwt issues and verifies the bearer tokens handed out at
// login. Tokens carry the user ID as the subject claim.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	issuer        = "blog-core"
	defaultSecret = "blog-core-secret-change-me"

	// TokenTTL is how long an issued token stays valid.
	TokenTTL = 7 * 24 * time.Hour
)

var (
	secret = []byte(defaultSecret)

	ErrInvalidToken = errors.New("invalid token")
)

// SetSecret configures the signing secret. Call once at startup; the
// built-in default only exists so a dev instance boots without config.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Sign issues an HS256 token for the given user.
func Sign(userID string) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies a token and returns the user ID it was issued for.
func Parse(tokenStr string) (string, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &jwtlib.RegisteredClaims{},
		func(t *jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwtlib.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
