package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/shopadmin/internal/client/storage"
	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// Единственный осмысленный ключ single-flight: одновременно имеет смысл
// ровно один обмен refresh token на новую пару
const refreshKey = "refresh"

// refreshTokens обменивает сохраненный refresh token на новую пару токенов.
// Сколько бы запросов ни поймали 401 одновременно, сетевой вызов к
// /auth/refresh-token выполняется один: остальные ждут тот же результат
// через singleflight. После завершения (успех или провал) flight
// забывается, и следующий 401 начинает новый.
func (c *Client) refreshTokens(ctx context.Context) (*storage.Credentials, error) {
	v, err, _ := c.refreshGroup.Do(refreshKey, func() (any, error) {
		// Отмена инициатора не должна валить refresh, результата которого
		// ждут чужие запросы
		return c.exchangeRefreshToken(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*storage.Credentials), nil
}

// exchangeRefreshToken выполняет сам сетевой обмен и ротацию токенов в хранилище
func (c *Client) exchangeRefreshToken(ctx context.Context) (*storage.Credentials, error) {
	creds, err := c.store.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil, ErrNoRefreshToken
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	payload, err := json.Marshal(pkgapi.RefreshRequest{RefreshToken: creds.RefreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	// Запрос уходит без bearer token: истекший access token здесь не нужен
	var resp pkgapi.RefreshResponse
	req := request{method: http.MethodPost, path: "/api/v1/auth/refresh-token", body: payload}
	if err := c.send(ctx, req, &resp, false); err != nil {
		// Любой не-2xx или сетевой сбой фатален: чистим хранилище,
		// все ожидающие получают одну и ту же ошибку
		if delErr := c.store.DeleteCredentials(ctx); delErr != nil {
			c.logger.Warn("failed to clear credentials after refresh failure", "error", delErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	newCreds := &storage.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}

	// Дескриптор пользователя при ротации токенов не меняется
	user, err := c.store.GetCachedUser(ctx)
	if err != nil && !errors.Is(err, storage.ErrCredentialsNotFound) {
		return nil, fmt.Errorf("failed to read cached user: %w", err)
	}

	if err := c.store.SaveCredentials(ctx, newCreds, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	c.logger.Debug("access token refreshed")
	return newCreds, nil
}
