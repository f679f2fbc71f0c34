package token

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the identity data embedded in a token
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Time  string `json:"time"`
	jwt.RegisteredClaims
}

// Service issues and verifies bearer tokens. A token is an HS256-signed JWT
// wrapped in a JWE layer (A256KW key wrap, A256CBC-HS512 content encryption)
// using the same 32-byte key for both layers.
type Service struct {
	key []byte
	ttl time.Duration
}

// NewService creates a token service from a hex-encoded 32-byte key.
// A zero ttl issues tokens without an expiry claim.
func NewService(keyHex string, ttl time.Duration) (*Service, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("token key must be 32 bytes, got %d", len(key))
	}
	return &Service{key: key, ttl: ttl}, nil
}

// Issue builds a signed and encrypted token for the given identity
func (s *Service) Issue(userID, email string, issuedAt time.Time) (string, error) {
	claims := &Claims{
		ID:    userID,
		Email: email,
		Time:  issuedAt.Format(time.RFC3339),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256CBC_HS512,
		jose.Recipient{Algorithm: jose.A256KW, Key: s.key},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create encrypter: %w", err)
	}

	obj, err := encrypter.Encrypt([]byte(signed))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt token: %w", err)
	}

	return obj.CompactSerialize()
}

// Verify decrypts the outer layer, validates the inner signature and
// returns the embedded claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	obj, err := jose.ParseEncrypted(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	signed, err := obj.Decrypt(s.key)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(string(signed), &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
