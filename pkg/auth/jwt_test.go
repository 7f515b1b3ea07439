package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)

	raw, err := tokens.Issue(42, "eve@example.com", "employer")
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := tokens.Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, "eve@example.com", claims.Email)
	assert.Equal(t, "employer", claims.Role)

	id, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseRejectsForgedTokens(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	raw, err := other.Issue(42, "eve@example.com", "admin")
	assert.NoError(t, err)

	_, err = tokens.Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsExpiredTokens(t *testing.T) {
	tokens := NewTokenManager("secret", -time.Minute)

	raw, err := tokens.Issue(42, "eve@example.com", "job_seeker")
	assert.NoError(t, err)

	_, err = tokens.Parse(raw)
	assert.Error(t, err)
}
