package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/config"
	"rental-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "rental-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	user := &models.User{ID: uuid.New(), Email: "owner@example.com"}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "rental-backend", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(&models.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	_, err = NewJWTManager(testConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig("test-secret")
	cfg.JWT.ExpirationHours = -1
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateToken(&models.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager(testConfig("test-secret")).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cure-pass"))
	assert.False(t, VerifyPassword(hash, "wrong-pass"))
}
