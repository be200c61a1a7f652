// Package auth implements the stateless token codec: issuing and verifying
// compact HS256 tokens whose subject is the username. Tokens are never
// stored server-side; validity is determined entirely by the signature and
// the embedded expiration.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gourmich/gourmich/internal/common"
)

// DefaultTokenTTL is the token lifetime used when a caller does not supply
// a custom duration.
const DefaultTokenTTL = 24 * time.Hour

// Service signs and verifies tokens with a process-wide symmetric key.
// The key is fixed at construction and never mutated, so concurrent use
// from request handlers needs no locking.
type Service struct {
	key []byte
	ttl time.Duration
}

// NewService creates a token codec. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewService(key []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{key: key, ttl: ttl}
}

// KeyFromSecret decodes a base64-encoded signing secret. A blank secret
// yields a freshly generated random key, which invalidates all previously
// issued tokens on every restart.
func KeyFromSecret(secret string) ([]byte, error) {
	if secret == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generating signing key: %w", err)
		}
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("decoding signing secret: %w", err)
	}
	return key, nil
}

// Issue creates a signed token for the subject with the default lifetime.
func (s *Service) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a signed token for the subject with a custom
// lifetime. Used for password-reset style short-lived tokens.
func (s *Service) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseSubject verifies the token and returns its subject. Every failure —
// bad signature, malformed structure, expiry — collapses into
// common.ErrInvalidToken so callers cannot branch on the reason.
func (s *Service) ParseSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

// IsExpired reports whether the token's expiration has passed. A token that
// cannot be parsed at all counts as expired: unparsable is never valid.
func (s *Service) IsExpired(tokenString string) bool {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return true
	}

	return claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether the token parses, carries the expected subject,
// and has not expired. It never returns an error: any parsing failure is
// simply false.
func (s *Service) Validate(tokenString, expectedSubject string) bool {
	subject, err := s.ParseSubject(tokenString)
	if err != nil {
		return false
	}
	return subject == expectedSubject && !s.IsExpired(tokenString)
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	return s.key, nil
}
