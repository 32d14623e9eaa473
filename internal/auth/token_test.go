package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := ParseUserID(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseUserID_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(1, secret, -time.Second)
	require.NoError(t, err)

	_, err = ParseUserID(tok, secret)
	assert.Error(t, err)
}

func TestParseUserID_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(7, []byte("one"), time.Hour)
	require.NoError(t, err)

	_, err = ParseUserID(tok, []byte("two"))
	assert.Error(t, err)
}

func TestParseUserID_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseUserID("not-a-token", []byte("k"))
	assert.Error(t, err)
}
