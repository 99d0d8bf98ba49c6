package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/solo-mizan/goru-club/internal/config"
)

func testManager(t *testing.T, ttl time.Duration) *JWTManager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewJWTManager(&config.Config{
		Auth: config.AuthConfig{
			AdminPasswordHash: string(hash),
			JWTSecret:         "test-secret",
			TokenTTL:          ttl,
		},
	})
}

func TestLoginAndVerify(t *testing.T) {
	m := testManager(t, time.Hour)

	token, err := m.Login("open sesame")
	require.NoError(t, err)
	assert.NoError(t, m.Verify(token))
}

func TestLoginWrongPassword(t *testing.T) {
	m := testManager(t, time.Hour)

	_, err := m.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	m := NewJWTManager(&config.Config{})

	_, err := m.Login("anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := testManager(t, -time.Minute)

	token, err := m.Login("open sesame")
	require.NoError(t, err)
	assert.ErrorIs(t, m.Verify(token), ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	m := testManager(t, time.Hour)

	assert.ErrorIs(t, m.Verify("not.a.token"), ErrInvalidToken)
}

func TestVerifyTokenSignedWithOtherSecret(t *testing.T) {
	m := testManager(t, time.Hour)
	other := NewJWTManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "another-secret", TokenTTL: time.Hour},
	})

	token, err := other.generate()
	require.NoError(t, err)
	assert.ErrorIs(t, m.Verify(token), ErrInvalidToken)
}

func TestVerifyWithoutConfiguredSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	m := NewJWTManager(&config.Config{
		Auth: config.AuthConfig{AdminPasswordHash: string(hash), TokenTTL: time.Hour},
	})

	_, err = m.Login("open sesame")
	assert.ErrorIs(t, err, ErrNotConfigured, "login must refuse with no signing key")

	// An empty HMAC key is one anybody can sign with; a token minted
	// offline against it must still be rejected
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := forged.SignedString([]byte(""))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Verify(signed), ErrInvalidToken)
}
