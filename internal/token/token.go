// Package token issues and verifies the signed bearer tokens that prove a
// user's identity between login and expiry. Tokens are self-contained HS256
// JWTs; nothing is stored server-side and nothing can be revoked early.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL applies when the config does not override the lifetime.
const DefaultTTL = 30 * time.Minute

// Service signs and verifies tokens with a process-wide key injected at
// construction. Changing the key invalidates every outstanding token.
type Service struct {
	key []byte
	ttl time.Duration
}

func NewService(key []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{key: key, ttl: ttl}
}

// Issue returns a signed token bound to subject, expiring ttl from now.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and returns the subject.
// Every failure (malformed token, wrong key or algorithm, expired) maps to
// domain.ErrTokenInvalid without distinguishing the cause.
func (s *Service) Verify(raw string) (string, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}
