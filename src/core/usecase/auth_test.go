package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remixjokes/src/core/domain"
	"remixjokes/src/infra/logger"
)

func newAuthService(store *memStore) (*AuthService, *plainHasher) {
	h := &plainHasher{}
	return NewAuthService(store, h, logger.Discard()), h
}

func TestAuthService_Register(t *testing.T) {
	store := newMemStore()
	svc, _ := newAuthService(store)

	user, err := svc.Register(context.Background(), "kody", "twixrox")
	require.NoError(t, err)
	assert.Equal(t, "kody", user.Username)
	assert.Equal(t, "hashed:twixrox", user.PasswordHash)
	assert.NotEqual(t, "twixrox", user.PasswordHash)
}

func TestAuthService_RegisterExistingUsername(t *testing.T) {
	store := newMemStore()
	svc, _ := newAuthService(store)
	ctx := context.Background()

	first, err := svc.Register(ctx, "kody", "twixrox")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "kody", "different-password")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "User with username kody already exists", domain.Message(err))

	// Nothing was written for the second attempt.
	assert.Equal(t, 1, store.createUserCalls)
	assert.Len(t, store.users, 1)
	stored, err := store.GetUserByUsername(ctx, "kody")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "hashed:twixrox", stored.PasswordHash)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	store := newMemStore()
	svc, _ := newAuthService(store)

	_, err := svc.Register(context.Background(), "ko", "short")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Zero(t, store.createUserCalls)
}

func TestAuthService_RegisterLookupFailure(t *testing.T) {
	store := newMemStore()
	store.lookupErr = errors.New("db down")
	svc, _ := newAuthService(store)

	_, err := svc.Register(context.Background(), "kody", "twixrox")
	require.Error(t, err)
	assert.False(t, domain.IsConflict(err))
	assert.Zero(t, store.createUserCalls)
}

func TestAuthService_Login(t *testing.T) {
	store := newMemStore()
	svc, _ := newAuthService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "kody", "twixrox")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "kody", "twixrox")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	store := newMemStore()
	svc, hasher := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "kody", "twixrox")
	require.NoError(t, err)

	before := hasher.compares
	_, wrongPassword := svc.Login(ctx, "kody", "wrong-password")
	_, unknownUser := svc.Login(ctx, "nobody", "twixrox")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	// Both paths ran a hash comparison.
	assert.Equal(t, before+2, hasher.compares)
}

func TestAuthService_LoginStorageError(t *testing.T) {
	store := newMemStore()
	store.lookupErr = errors.New("db down")
	svc, _ := newAuthService(store)

	_, err := svc.Login(context.Background(), "kody", "twixrox")
	require.Error(t, err)
	assert.False(t, domain.IsUnauthorized(err))
}
