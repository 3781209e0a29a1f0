package adapters

import (
	"context"
	"path/filepath"
	"testing"

	"mylogin/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	dbPath := filepath.Join(t.TempDir(), "login.db")

	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{name: "redis", uri: "redis://" + mr.Addr() + "/0"},
		{name: "sqlite", uri: "sqlite://" + dbPath},
		{name: "sqlite without path", uri: "sqlite://", wantErr: true},
		{name: "unknown scheme", uri: "mongodb://localhost:27017", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewCredentialStore(ctx, StoreConfig{URI: tt.uri, Database: "login", Collection: "credential"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer store.Close()

			session, err := store.Connect(ctx)
			require.NoError(t, err)
			defer session.Close()

			cred := domain.Credential{Username: "alice", PasswordHash: "hash"}
			require.NoError(t, session.SaveCredential(ctx, cred))
			got, err := session.FindByUsername(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, cred, got)
		})
	}
}
