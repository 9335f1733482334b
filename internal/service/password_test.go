package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // low cost keeps the test fast

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	ok, err := hasher.Verify("Secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	// Same input, different salt, different hash; both still verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("Secret123", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_MalformedHashIsAnError(t *testing.T) {
	hasher := NewPasswordHasher(4)

	ok, err := hasher.Verify("Secret123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	ok, err := hasher.Verify("Secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
