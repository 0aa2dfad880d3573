package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue("tenant-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	tenantID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "tenant-42", tenantID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Issue("tenant-42")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Issue("tenant-42")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Verify("not.a.jwt")
	require.Error(t, err)
}

func TestVerifyRejectsMissingTenantClaim(t *testing.T) {
	// A structurally valid token signed with the right secret but without
	// the tenant identity claim must not authenticate.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "someone",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", time.Hour).Verify(signed)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}
