package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestOwnerTokenRoundTrip(t *testing.T) {
	token, err := IssueOwnerToken(testSecret, " alice ", time.Now(), time.Hour)
	require.NoError(t, err)

	owner, err := ParseOwnerToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
}

func TestParseOwnerTokenRejects(t *testing.T) {
	valid, err := IssueOwnerToken(testSecret, "alice", time.Now(), 0)
	require.NoError(t, err)
	expired, err := IssueOwnerToken(testSecret, "alice", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{name: "wrong secret", secret: strings.Repeat("x", 32), raw: valid},
		{name: "expired", secret: testSecret, raw: expired},
		{name: "garbage", secret: testSecret, raw: "not.a.token"},
		{name: "empty", secret: testSecret, raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOwnerToken(tt.secret, tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestIssueOwnerTokenRequiresInputs(t *testing.T) {
	_, err := IssueOwnerToken("", "alice", time.Now(), 0)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = IssueOwnerToken(testSecret, "  ", time.Now(), 0)
	assert.ErrorIs(t, err, ErrEmptyOwner)
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(8)
	require.NoError(t, err)
	assert.Len(t, secret, 32)
	for _, char := range secret {
		assert.True(t, strings.ContainsRune(secretAlphabet, char), "unexpected %q", char)
	}

	other, err := GenerateSecret(48)
	require.NoError(t, err)
	assert.Len(t, other, 48)
	assert.NotEqual(t, secret, other[:32])
}
