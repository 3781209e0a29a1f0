package mysqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mylogin/domain"
	"mylogin/helpers"
	"mylogin/interfaces"
	"mylogin/service"
)

var _ interfaces.CredentialStore = (*CredentialStore)(nil)

// CredentialStore keeps credentials in one table, partitioned by the {database}:{collection} namespace.
type CredentialStore struct {
	db        *DB
	namespace string
}

// NewCredentialStore opens the database file at path and applies migrations.
func NewCredentialStore(ctx context.Context, path, database, collection string) (*CredentialStore, error) {
	namespace := helpers.StrPanic(database, "mysqlite: database is required") + ":" +
		helpers.StrPanic(collection, "mysqlite: collection is required")

	db, err := NewDB(ctx, helpers.StrPanic(path, "mysqlite: path is required"))
	if err != nil {
		return nil, fmt.Errorf("can't open sqlite database %q: %w", path, err)
	}
	if err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &CredentialStore{db: db, namespace: namespace}, nil
}

// Connect checks out a dedicated reader connection for the session.
func (s *CredentialStore) Connect(ctx context.Context) (interfaces.CredentialSession, error) {
	conn, err := s.db.Reader.Conn(ctx)
	if err != nil {
		return nil, service.NewInternalServerError("SQLite connect error", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, service.NewInternalServerError("SQLite connect error", fmt.Errorf("can't ping sqlite, err: %w", err))
	}
	return &credentialSession{conn: conn, writer: s.db.Writer, namespace: s.namespace}, nil
}

// Close closes the underlying database pools.
func (s *CredentialStore) Close() error {
	return s.db.Close()
}

type credentialSession struct {
	conn      *sql.Conn
	writer    *sql.DB
	namespace string
}

func (s *credentialSession) FindByUsername(ctx context.Context, username string) (domain.Credential, error) {
	const query = `SELECT username, password_hash FROM credentials WHERE namespace = ? AND username = ?`
	var credential domain.Credential
	err := s.conn.QueryRowContext(ctx, query, s.namespace, username).Scan(&credential.Username, &credential.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Credential{}, service.NewEntityNotFoundError("credential not found", nil)
	}
	if err != nil {
		return domain.Credential{}, service.NewInternalServerError("SQLite query error", fmt.Errorf("can't read credential %q: %w", username, err))
	}
	return credential, nil
}

func (s *credentialSession) SaveCredential(ctx context.Context, credential domain.Credential) error {
	const query = `INSERT INTO credentials (namespace, username, password_hash) VALUES (?, ?, ?)
		ON CONFLICT (namespace, username) DO UPDATE SET password_hash = excluded.password_hash, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.writer.ExecContext(ctx, query, s.namespace, credential.Username, credential.PasswordHash); err != nil {
		return service.NewInternalServerError("SQLite write error", fmt.Errorf("can't write credential %q: %w", credential.Username, err))
	}
	return nil
}

func (s *credentialSession) DeleteCredential(ctx context.Context, username string) error {
	const query = `DELETE FROM credentials WHERE namespace = ? AND username = ?`
	res, err := s.writer.ExecContext(ctx, query, s.namespace, username)
	if err != nil {
		return service.NewInternalServerError("SQLite delete error", fmt.Errorf("can't delete credential %q: %w", username, err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return service.NewInternalServerError("SQLite delete error", fmt.Errorf("rows affected: %w", err))
	}
	if affected == 0 {
		return service.NewEntityNotFoundError("credential not found", nil)
	}
	return nil
}

func (s *credentialSession) Close() error {
	return s.conn.Close()
}
