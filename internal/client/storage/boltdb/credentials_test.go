package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/shopadmin/internal/client/storage"
	"github.com/iudanet/shopadmin/pkg/api"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testUser() *api.User {
	return &api.User{
		ID:        "user-id-123",
		Name:      "Admin User",
		Email:     "admin@example.com",
		Role:      api.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStorage_SaveGetDeleteCredentials(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	creds := &storage.Credentials{
		AccessToken:  "access-token-1",
		RefreshToken: "refresh-token-1",
	}

	// До сохранения GetCredentials выдает ErrCredentialsNotFound
	_, err := store.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	_, err = store.GetCachedUser(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	// Сохраняем сессию
	err = store.SaveCredentials(ctx, creds, testUser())
	require.NoError(t, err)

	// Получаем и сравниваем токены
	got, err := store.GetCredentials(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, creds.AccessToken, got.AccessToken)
	assert.Equal(t, creds.RefreshToken, got.RefreshToken)

	// Кэшированный пользователь читается без сети
	user, err := store.GetCachedUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.True(t, user.IsAdmin())

	// Удаляем сессию
	err = store.DeleteCredentials(ctx)
	require.NoError(t, err)

	_, err = store.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
	_, err = store.GetCachedUser(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	// Повторное удаление не ошибка: logout идемпотентен
	err = store.DeleteCredentials(ctx)
	assert.NoError(t, err)
}

func TestStorage_SaveCredentials_Partial(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tests := []struct {
		creds *storage.Credentials
		name  string
	}{
		{name: "nil credentials", creds: nil},
		{name: "missing access token", creds: &storage.Credentials{RefreshToken: "r"}},
		{name: "missing refresh token", creds: &storage.Credentials{AccessToken: "a"}},
		{name: "both missing", creds: &storage.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveCredentials(ctx, tt.creds, testUser())
			assert.ErrorIs(t, err, storage.ErrPartialCredentials)

			// Хранилище осталось пустым
			_, err = store.GetCredentials(ctx)
			assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
		})
	}
}

// Инвариант "оба или ни одного": даже если в файле оказался ровно один
// токен (запись прошлой версии клиента), сессия считается отсутствующей.
func TestStorage_GetCredentials_SingleTokenIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyAccessToken, []byte("orphan-access"))
	})
	require.NoError(t, err)

	_, err = store.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestStorage_SaveCredentials_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := &storage.Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}
	require.NoError(t, store.SaveCredentials(ctx, first, testUser()))

	// Ротация токенов при refresh перезаписывает пару целиком
	second := &storage.Credentials{AccessToken: "access-2", RefreshToken: "refresh-2"}
	require.NoError(t, store.SaveCredentials(ctx, second, testUser()))

	got, err := store.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, "refresh-2", got.RefreshToken)
}

func TestStorage_Persistence(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "persist_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	creds := &storage.Credentials{AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, store.SaveCredentials(ctx, creds, testUser()))
	require.NoError(t, store.Close())

	// Сессия переживает перезапуск процесса
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	got, err := store.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)

	user, err := store.GetCachedUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, api.RoleAdmin, user.Role)
}
