package myredis

import (
	"context"
	"testing"
	"time"

	"mylogin/domain"
	"mylogin/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDatabase   = "login"
	testCollection = "credential"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *CredentialStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewCredentialStore("redis://"+mr.Addr(), testDatabase, testCollection)
	require.NoError(t, err)
	return mr, store
}

func TestNewCredentialStore(t *testing.T) {
	t.Run("invalid URL returns error", func(t *testing.T) {
		store, err := NewCredentialStore("://invalid", testDatabase, testCollection)
		require.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("empty collection panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = NewCredentialStore("redis://localhost:6379", testDatabase, "")
		})
	})
}

func TestCredentialSession_FindByUsername(t *testing.T) {
	ctx := context.Background()
	mr, store := setupTestStore(t)

	session, err := store.Connect(ctx)
	require.NoError(t, err)
	defer session.Close()

	t.Run("success", func(t *testing.T) {
		mr.Set("login:credential:alice", `{"username":"alice","password_hash":"$2a$04$hash"}`)

		got, err := session.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.Credential{Username: "alice", PasswordHash: "$2a$04$hash"}, got)
	})

	t.Run("document without username takes it from the key", func(t *testing.T) {
		mr.Set("login:credential:bob", `{"password_hash":"$2a$04$other"}`)

		got, err := session.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Username)
	})

	t.Run("key missing returns entity not found", func(t *testing.T) {
		_, err := session.FindByUsername(ctx, "nouser")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("other collection is not visible", func(t *testing.T) {
		mr.Set("login:admins:carol", `{"username":"carol","password_hash":"x"}`)

		_, err := session.FindByUsername(ctx, "carol")
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("invalid JSON returns internal error", func(t *testing.T) {
		mr.Set("login:credential:badjson", "invalid json")

		_, err := session.FindByUsername(ctx, "badjson")
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestCredentialSession_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	mr, store := setupTestStore(t)

	session, err := store.Connect(ctx)
	require.NoError(t, err)
	defer session.Close()

	cred := domain.Credential{Username: "alice", PasswordHash: "$2a$04$hash"}
	require.NoError(t, session.SaveCredential(ctx, cred))
	assert.True(t, mr.Exists("login:credential:alice"))

	got, err := session.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, cred, got)

	require.NoError(t, session.DeleteCredential(ctx, "alice"))
	assert.False(t, mr.Exists("login:credential:alice"))

	err = session.DeleteCredential(ctx, "alice")
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestCredentialStore_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("each session owns its connection", func(t *testing.T) {
		mr, store := setupTestStore(t)

		first, err := store.Connect(ctx)
		require.NoError(t, err)
		second, err := store.Connect(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, mr.CurrentConnectionCount())

		require.NoError(t, first.Close())
		require.NoError(t, second.Close())
		assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("unreachable store returns internal error", func(t *testing.T) {
		mr, store := setupTestStore(t)
		mr.Close()

		session, err := store.Connect(ctx)
		require.Error(t, err)
		assert.Nil(t, session)
		assert.True(t, service.IsInternalServerError(err))
	})

	t.Run("query after server loss returns internal error", func(t *testing.T) {
		mr, store := setupTestStore(t)
		session, err := store.Connect(ctx)
		require.NoError(t, err)
		defer session.Close()
		mr.Close()

		_, err = session.FindByUsername(ctx, "alice")
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})

	t.Run("store close is a no-op", func(t *testing.T) {
		_, store := setupTestStore(t)
		assert.NoError(t, store.Close())
	})
}
