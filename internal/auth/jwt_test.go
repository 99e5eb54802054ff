package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTM() *TokenManager {
	return NewTokenManager("acc-secret", "ref-secret", "test", time.Minute, time.Hour)
}

func TestGenerateAndParsePair(t *testing.T) {
	tm := newTM()
	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	acc, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", acc.UserID())
	assert.NotEmpty(t, acc.ID)
	assert.WithinDuration(t, pair.ExpiresAt, acc.Expiry(), time.Second)

	ref, err := tm.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ref.UserID())
	assert.NotEqual(t, acc.ID, ref.ID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	tm := newTM()
	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = tm.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredAndForeignTokensRejected(t *testing.T) {
	tm := newTM()
	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	tm.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenManager("acc-secret", "ref-secret", "someone-else", time.Minute, time.Hour)
	foreign, err := other.GeneratePair("user-1")
	require.NoError(t, err)
	_, err = newTM().ParseAccess(foreign.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = newTM().ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NoError(t, VerifyPassword("s3cret-pass", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}
