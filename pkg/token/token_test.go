package token

import (
	"strings"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewService_KeyValidation(t *testing.T) {
	_, err := NewService("not-hex", 0)
	assert.Error(t, err)

	_, err = NewService("abcd", 0)
	assert.Error(t, err)

	svc, err := NewService(testKeyHex, 0)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestService_IssueAndVerify(t *testing.T) {
	svc, err := NewService(testKeyHex, 0)
	assert.NoError(t, err)

	issuedAt := time.Now()
	tok, err := svc.Issue("4f5a1c52-8a2e-4b1f-9c3d-2e6f7a8b9c0d", "admin@itshort.io", issuedAt)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)
	// Compact JWE has five dot-separated parts
	assert.Len(t, strings.Split(tok, "."), 5)

	claims, err := svc.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, "4f5a1c52-8a2e-4b1f-9c3d-2e6f7a8b9c0d", claims.ID)
	assert.Equal(t, "admin@itshort.io", claims.Email)
	assert.Equal(t, issuedAt.Format(time.RFC3339), claims.Time)
}

func TestService_VerifyMissingToken(t *testing.T) {
	svc, _ := NewService(testKeyHex, 0)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestService_VerifyGarbage(t *testing.T) {
	svc, _ := NewService(testKeyHex, 0)

	_, err := svc.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Structurally valid JWS but not a JWE at all
	inner := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.MapClaims{"id": "x"})
	signed, err := inner.SignedString([]byte("some-other-key"))
	assert.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyWrongKey(t *testing.T) {
	issuer, _ := NewService(testKeyHex, 0)
	verifier, _ := NewService("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 0)

	tok, err := issuer.Issue("some-id-000000000000000000000000000", "a@x.com", time.Now())
	assert.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyExpired(t *testing.T) {
	svc, _ := NewService(testKeyHex, time.Second)

	tok, err := svc.Issue("some-id", "a@x.com", time.Now().Add(-time.Minute))
	assert.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_NoExpiryByDefault(t *testing.T) {
	svc, _ := NewService(testKeyHex, 0)

	tok, err := svc.Issue("some-id", "a@x.com", time.Now().Add(-24*365*time.Hour))
	assert.NoError(t, err)

	claims, err := svc.Verify(tok)
	assert.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestService_VerifyEmptyClaims(t *testing.T) {
	svc, _ := NewService(testKeyHex, 0)

	tok, err := svc.Issue("", "", time.Now())
	assert.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
