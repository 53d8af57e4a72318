package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-123")
	require.NoError(t, err)

	userID, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseRejectsWrongAlg(t *testing.T) {
	// Unsigned tokens must never verify.
	claims := jwtlib.RegisteredClaims{Issuer: issuer, Subject: "user-123"}
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(unsigned)
	assert.Error(t, err)
}

func TestParseRejectsForeignIssuer(t *testing.T) {
	claims := jwtlib.RegisteredClaims{Issuer: "someone-else", Subject: "user-123"}
	foreign, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Parse(foreign)
	assert.Error(t, err)
}
