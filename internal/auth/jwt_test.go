package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	tokens := New("secret", time.Hour)

	token, err := tokens.Issue("rakib@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "rakib@example.com", email)
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).Issue("rakib@example.com")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Verify_Expired(t *testing.T) {
	tokens := New("secret", -time.Minute)

	token, err := tokens.Issue("rakib@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Verify_Garbage(t *testing.T) {
	_, err := New("secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Repeated issue requests all stay valid; there is no single-session rule.
func TestJWT_Issue_RepeatedTokensBothVerify(t *testing.T) {
	tokens := New("secret", time.Hour)

	first, err := tokens.Issue("rakib@example.com")
	require.NoError(t, err)
	second, err := tokens.Issue("rakib@example.com")
	require.NoError(t, err)

	for _, token := range []string{first, second} {
		email, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "rakib@example.com", email)
	}
}

func TestJWT_TTL(t *testing.T) {
	assert.Equal(t, 10*time.Hour, New("secret", 10*time.Hour).TTL())
}
