package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := service.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Validate(token)
	assert.NoError(t, err)

	subject, err := claims.Subject()
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTService_RoundTrip_FreshTokensDiffer(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	userID := uuid.New()

	first, err := service.Generate(userID)
	assert.NoError(t, err)

	// A later token differs but resolves to the same subject.
	time.Sleep(1100 * time.Millisecond)
	second, err := service.Generate(userID)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	for _, token := range []string{first, second} {
		claims, err := service.Validate(token)
		assert.NoError(t, err)
		subject, err := claims.Subject()
		assert.NoError(t, err)
		assert.Equal(t, userID, subject)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	service.expiry = -time.Minute

	token, err := service.Generate(uuid.New())
	assert.NoError(t, err)

	_, err = service.Validate(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", time.Hour)
	verifier := NewJWTService("other-secret", time.Hour)

	token, err := issuer.Generate(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_Tampered(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	token, err := service.Generate(uuid.New())
	assert.NoError(t, err)

	_, err = service.Validate(token + "x")
	assert.Error(t, err)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	_, err := service.Validate("not-a-token")
	assert.Error(t, err)
}
