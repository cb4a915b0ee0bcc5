package cryptox

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestMintToken_DeterministicForSameInstant(t *testing.T) {
	at := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)

	a, err := MintToken("user-1", at, testSecret)
	require.NoError(t, err)
	b, err := MintToken("user-1", at, testSecret)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := MintToken("user-1", at.Add(time.Second), testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := MintToken("user-2", at, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestParseToken_RoundTrip(t *testing.T) {
	at := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	tok, err := MintToken("user-1", at, testSecret)
	require.NoError(t, err)

	sub, iat, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.True(t, at.Equal(iat))
}

func TestParseToken_Rejects(t *testing.T) {
	tok, err := MintToken("user-1", time.Now(), testSecret)
	require.NoError(t, err)

	_, _, err = ParseToken(tok, []byte("other-secret"))
	require.True(t, errors.Is(err, common.ErrInvalidToken))

	_, _, err = ParseToken("not-a-token", testSecret)
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}
