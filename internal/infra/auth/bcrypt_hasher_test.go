package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "p1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// Two registrations with the same password must not share a hash.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "correct-horse"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-horse", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("p1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check("p1", hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("p1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}
