package interfaces

import (
	"context"

	"mylogin/domain"
)

// CredentialStore opens connections to the backing store holding credential records.
// Implementation can be Redis or SQLite.
//
//go:generate moq -stub -out mock/credential_store.go -pkg mock . CredentialStore
type CredentialStore interface {
	// Connect opens one connection scoped to the caller. The caller must Close the session.
	// Returns internal_server_error when the store is unreachable.
	Connect(ctx context.Context) (CredentialSession, error)

	// Close releases resources shared by all sessions (pools, file handles).
	Close() error
}

// CredentialSession is a single open connection to the credential store.
//
//go:generate moq -stub -out mock/credential_session.go -pkg mock . CredentialSession
type CredentialSession interface {
	// FindByUsername returns the record stored for username.
	// Returns:
	// 1) (credential, nil) when the record exists;
	// 2) entity_not_found when there is no record;
	// 3) internal_server_error on query failure or when the stored document cannot be decoded.
	FindByUsername(ctx context.Context, username string) (domain.Credential, error)

	// SaveCredential inserts or replaces the record for credential.Username.
	SaveCredential(ctx context.Context, credential domain.Credential) error

	// DeleteCredential removes the record for username. Returns entity_not_found when absent.
	DeleteCredential(ctx context.Context, username string) error

	// Close releases the connection. Safe to call once per session.
	Close() error
}
