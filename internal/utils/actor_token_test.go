package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestActorTokenRoundTrip(t *testing.T) {
	token, err := IssueActorToken("user-1", testSecret, time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseActorToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, ActorTokenIssuer, claims.Issuer)
}

func TestParseActorToken_Rejects(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		token, err := IssueActorToken("user-1", testSecret, time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		_, err = ParseActorToken(token, testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueActorToken("user-1", testSecret, time.Hour, time.Now())
		require.NoError(t, err)
		_, err = ParseActorToken(token, "another-secret")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
}

func TestIssueActorToken_RequiresUser(t *testing.T) {
	_, err := IssueActorToken("", testSecret, time.Hour, time.Now())
	assert.Error(t, err)
}
