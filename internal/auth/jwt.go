package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/solo-mizan/goru-club/internal/config"
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured is returned when no admin credential hash is
	// present in configuration, so the gate can never open
	ErrNotConfigured = errors.New("admin credential not configured")
)

// JWTManager issues and verifies the session token carried by admin
// requests. The token replaces the old ambient "authenticated" flag:
// it is scoped per session and checked per request.
type JWTManager struct {
	secret       []byte
	ttl          time.Duration
	passwordHash string
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:       []byte(cfg.Auth.JWTSecret),
		ttl:          cfg.Auth.TokenTTL,
		passwordHash: cfg.Auth.AdminPasswordHash,
	}
}

// Login checks the shared admin secret against the configured bcrypt
// hash and issues a session token
func (m *JWTManager) Login(password string) (string, error) {
	if m.passwordHash == "" || len(m.secret) == 0 {
		return "", ErrNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return m.generate()
}

func (m *JWTManager) generate() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token's signature and expiry. With no
// secret configured there is no key anyone legitimately signed with,
// so every token is rejected: an empty HMAC key is one anybody can
// sign tokens against offline.
func (m *JWTManager) Verify(tokenString string) error {
	if len(m.secret) == 0 {
		return ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
