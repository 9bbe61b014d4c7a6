package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash")

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordRejectsPlaintextStore(t *testing.T) {
	// a stored plaintext value must never verify as a hash
	assert.False(t, CheckPassword("plaintext", "plaintext"))
}
