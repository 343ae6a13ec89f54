package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSigningKey is returned when a Signer was built without a key.
var ErrNoSigningKey = errors.New("jwtutil: signing key is empty")

// EditorClaims represents the JWT claims of a catalog editor
type EditorClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Signer issues and validates HS256 tokens with a shared key.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer. A zero ttl means one hour.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a JWT token for the given editor
func (s *Signer) GenerateToken(subject, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSigningKey
	}

	now := time.Now()
	claims := EditorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses the JWT token
func (s *Signer) ValidateToken(tokenString string) (*EditorClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSigningKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &EditorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*EditorClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
