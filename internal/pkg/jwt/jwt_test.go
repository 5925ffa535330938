//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.GenerateSessionToken("0812345678", member.EntitlementMember, "Somchai Jaidee")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0812345678", claims.Identifier)
	assert.Equal(t, "MEMBER", claims.Entitlement)
	assert.Equal(t, "Somchai Jaidee", claims.DisplayName)
	assert.Empty(t, claims.Role)
	assert.NotEmpty(t, claims.ID, "every token carries a unique id")
}

func TestSessionToken_DistinctIDs(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	first, err := svc.GenerateSessionToken(member.GuestIdentifier, member.EntitlementNonMember, "")
	require.NoError(t, err)
	second, err := svc.GenerateSessionToken(member.GuestIdentifier, member.EntitlementNonMember, "")
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID,
		"two guest sessions must not share an id")
}

func TestAdminToken_CarriesRole(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.GenerateAdminToken("backoffice")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "backoffice", claims.Identifier)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestValidateToken_RejectsBadInput(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateSessionToken("0812345678", member.EntitlementMember, "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		shortLived := jwt.NewService("test-secret", -time.Minute)
		token, err := shortLived.GenerateSessionToken("0812345678", member.EntitlementMember, "")
		require.NoError(t, err)

		_, err = shortLived.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
