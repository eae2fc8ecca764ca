package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopadmin/internal/client/storage"
	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// Без сохраненного refresh token обмен падает сразу, без сетевого вызова
func TestRefreshTokens_NoToken(t *testing.T) {
	var refreshCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{}, nil)

	_, err := client.refreshTokens(context.Background())

	assert.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Equal(t, int32(0), refreshCalls.Load())
}

// Успешный refresh ротирует обе части пары и сохраняет кэшированного пользователя
func TestRefreshTokens_RotatesPair(t *testing.T) {
	store := authedStore()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh-token", r.URL.Path)
		writeJSON(t, w, http.StatusOK, pkgapi.RefreshResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, store, nil)

	creds, err := client.refreshTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-access", creds.AccessToken)
	assert.Equal(t, "new-refresh", creds.RefreshToken)

	stored := store.snapshot()
	require.NotNil(t, stored)
	assert.Equal(t, "new-access", stored.AccessToken)

	user, err := store.GetCachedUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

// Провал refresh чистит хранилище: пары "access есть, refresh нет" не бывает
func TestRefreshTokens_FailureClearsStore(t *testing.T) {
	store := authedStore()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, pkgapi.ErrorResponse{Message: "refresh token revoked"})
	}))
	defer server.Close()

	client := NewClient(server.URL, store, nil)

	_, err := client.refreshTokens(context.Background())

	assert.ErrorIs(t, err, ErrRefreshFailed)
	assert.Nil(t, store.snapshot())
}

// Конкурентные вызовы refreshTokens делят один сетевой вызов и видят
// один и тот же результат
func TestRefreshTokens_SingleFlight(t *testing.T) {
	const parallel = 5

	var refreshCalls atomic.Int32
	store := authedStore()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		time.Sleep(150 * time.Millisecond)
		writeJSON(t, w, http.StatusOK, pkgapi.RefreshResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, store, nil)

	var wg sync.WaitGroup
	results := make([]*storage.Credentials, parallel)
	errs := make([]error, parallel)
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = client.refreshTokens(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), refreshCalls.Load())
	for i := 0; i < parallel; i++ {
		require.NoError(t, errs[i], "caller %d", i)
		assert.Equal(t, "new-access", results[i].AccessToken, "caller %d", i)
	}
}

// После завершения flight забывается: следующий 401 начинает новый обмен
func TestRefreshTokens_FlightDiscardedAfterSettling(t *testing.T) {
	var refreshCalls atomic.Int32
	store := authedStore()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := refreshCalls.Add(1)
		writeJSON(t, w, http.StatusOK, pkgapi.RefreshResponse{
			AccessToken:  "access-" + string(rune('0'+n)),
			RefreshToken: "refresh-" + string(rune('0'+n)),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, store, nil)
	ctx := context.Background()

	first, err := client.refreshTokens(ctx)
	require.NoError(t, err)

	second, err := client.refreshTokens(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), refreshCalls.Load())
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

// Отмена контекста первого инициатора не валит общий refresh
func TestRefreshTokens_InitiatorCancelDoesNotPoisonFlight(t *testing.T) {
	store := authedStore()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		writeJSON(t, w, http.StatusOK, pkgapi.RefreshResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.refreshTokens(ctx)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	err := <-done
	require.NoError(t, err)

	stored := store.snapshot()
	require.NotNil(t, stored)
	assert.Equal(t, "new-access", stored.AccessToken)
}
