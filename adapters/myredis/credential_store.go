package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mylogin/domain"
	"mylogin/helpers"
	"mylogin/interfaces"
	"mylogin/service"

	"github.com/go-redis/redis/v8"
)

var _ interfaces.CredentialStore = (*CredentialStore)(nil)

// CredentialStore keeps one JSON document per credential at key {database}:{collection}:{username}.
// Every Connect dials a dedicated single-connection client that the session closes.
type CredentialStore struct {
	uri    string
	prefix string
}

// NewCredentialStore creates a Redis backed CredentialStore. Fails on a malformed URI.
func NewCredentialStore(uri, database, collection string) (*CredentialStore, error) {
	if _, err := redis.ParseURL(uri); err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	return &CredentialStore{
		uri: uri,
		prefix: helpers.StrPanic(database, "myredis: database is required") + ":" +
			helpers.StrPanic(collection, "myredis: collection is required"),
	}, nil
}

func (s *CredentialStore) Connect(ctx context.Context) (interfaces.CredentialSession, error) {
	client, err := NewRedisUniversalClient(s.uri, SingleConnection)
	if err != nil {
		return nil, service.NewInternalServerError("Redis client error", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, service.NewInternalServerError("Redis connect error", fmt.Errorf("can't ping redis, err: %w", err))
	}
	return &credentialSession{client: client, prefix: s.prefix}, nil
}

// Close is a no-op: connections belong to sessions.
func (s *CredentialStore) Close() error {
	return nil
}

type credentialSession struct {
	client redis.UniversalClient
	prefix string
}

func (s *credentialSession) FindByUsername(ctx context.Context, username string) (domain.Credential, error) {
	data, err := s.client.Get(ctx, s.generateKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Credential{}, service.NewEntityNotFoundError("credential not found", nil)
		}
		return domain.Credential{}, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read credential (key='%s'), err: %w", s.generateKey(username), err))
	}

	var credential domain.Credential
	if err := json.Unmarshal(data, &credential); err != nil {
		return domain.Credential{}, service.NewInternalServerError("Redis unmarshal error", fmt.Errorf("can't unmarshal credential (key='%s'), err: %w", s.generateKey(username), err))
	}
	if credential.Username == "" {
		credential.Username = username
	}
	return credential, nil
}

func (s *credentialSession) SaveCredential(ctx context.Context, credential domain.Credential) error {
	data, err := json.Marshal(credential)
	if err != nil {
		return service.NewInternalServerError("Redis marshal error", fmt.Errorf("can't marshal credential, err: %w", err))
	}
	if err := s.client.Set(ctx, s.generateKey(credential.Username), data, 0).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write credential (key='%s'), err: %w", s.generateKey(credential.Username), err))
	}
	return nil
}

func (s *credentialSession) DeleteCredential(ctx context.Context, username string) error {
	deleted, err := s.client.Del(ctx, s.generateKey(username)).Result()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete credential (key='%s'), err: %w", s.generateKey(username), err))
	}
	if deleted == 0 {
		return service.NewEntityNotFoundError("credential not found", nil)
	}
	return nil
}

func (s *credentialSession) Close() error {
	return s.client.Close()
}

func (s *credentialSession) generateKey(username string) string {
	return s.prefix + ":" + username
}
