package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifierRoundTrip(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production uses DefaultBcryptCost.
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.HashPassword("a-long-enough-password")
	require.NoError(t, err)
	assert.NotEqual(t, "a-long-enough-password", hash)

	assert.NoError(t, v.Compare(hash, "a-long-enough-password"))
	assert.Error(t, v.Compare(hash, "the-wrong-password"))
}

func TestNewBcryptVerifierClampsCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBcryptCost, NewBcryptVerifier(0).cost)
	assert.Equal(t, DefaultBcryptCost, NewBcryptVerifier(100).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptVerifier(bcrypt.MinCost).cost)
}
