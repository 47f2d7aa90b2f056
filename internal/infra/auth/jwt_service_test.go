package auth

import (
	"testing"

	"autolot/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testTokenService(t)

	access, refresh, err := svc.GenerateTokens(42, []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	token, err := svc.ValidateToken(access, "test-access-secret")
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "admin")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := testTokenService(t)

	access, _, err := svc.GenerateTokens(1, nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, "some-other-secret")
	assert.Error(t, err)
}
