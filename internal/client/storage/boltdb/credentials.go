package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shopadmin/internal/client/storage"
	"github.com/iudanet/shopadmin/pkg/api"
)

// Ключи в bucket session. Все три записи пишутся и удаляются вместе:
// наблюдать сессию с одним токеном из двух извне транзакции невозможно.
var (
	keyAccessToken  = []byte("access_token")
	keyRefreshToken = []byte("refresh_token")
	keyUser         = []byte("user")
)

// Compile-time check that Storage implements CredentialStorage
var _ storage.CredentialStorage = (*Storage)(nil)

// SaveCredentials stores both tokens and the cached user descriptor
// in a single transaction
func (s *Storage) SaveCredentials(ctx context.Context, creds *storage.Credentials, user *api.User) error {
	if creds == nil || creds.AccessToken == "" || creds.RefreshToken == "" {
		return storage.ErrPartialCredentials
	}

	// Сериализуем дескриптор пользователя в JSON
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyAccessToken, []byte(creds.AccessToken)); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
		if err := bucket.Put(keyRefreshToken, []byte(creds.RefreshToken)); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		if err := bucket.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return nil
	})
}

// GetCredentials retrieves the stored token pair.
// Для защиты инварианта "оба или ни одного" запись с единственным
// токеном считается отсутствующей сессией.
func (s *Storage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	var creds *storage.Credentials

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		access := bucket.Get(keyAccessToken)
		refresh := bucket.Get(keyRefreshToken)
		if len(access) == 0 || len(refresh) == 0 {
			return storage.ErrCredentialsNotFound
		}

		creds = &storage.Credentials{
			AccessToken:  string(access),
			RefreshToken: string(refresh),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return creds, nil
}

// GetCachedUser retrieves the cached user descriptor
func (s *Storage) GetCachedUser(ctx context.Context) (*api.User, error) {
	var user *api.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyUser)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		user = &api.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal user: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteCredentials removes all session entries in a single transaction.
// Удаление отсутствующей сессии не ошибка: logout идемпотентен.
func (s *Storage) DeleteCredentials(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		for _, key := range [][]byte{keyAccessToken, keyRefreshToken, keyUser} {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}
