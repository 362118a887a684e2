package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestInMemoryStoreCreateAndFetch(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "shopper", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "shopper", user.Username)

	// Password must be stored hashed, never verbatim.
	assert.NotEqual(t, "hunter2", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))

	byID, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byName, err := store.GetUserByUsername(ctx, "shopper")
	require.NoError(t, err)
	assert.Equal(t, user, byName)
}

func TestInMemoryStoreRejectsDuplicateUsername(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "shopper", "one")
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "shopper", "two")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestInMemoryStoreNotFound(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_, err := store.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
