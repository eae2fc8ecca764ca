package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/shopadmin/internal/client/storage"
	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером админки.
// Это единственный путь, которым остальное приложение ходит к API:
// клиент сам подставляет bearer token, один раз восстанавливается после
// истечения access token и принудительно завершает сессию, когда
// восстановление невозможно.
type Client struct {
	httpClient *http.Client
	store      storage.CredentialStorage
	logger     *slog.Logger
	onExpired  func()
	baseURL    string

	refreshGroup singleflight.Group

	mu       sync.Mutex
	notified bool
}

// NewClient создает новый API клиент
func NewClient(baseURL string, store storage.CredentialStorage, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		store:   store,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetSessionExpiredHandler регистрирует обработчик, вызываемый при
// принудительном завершении сессии. Навигацией к экрану логина занимается
// подписчик, а не транспорт: pipeline остается тестируемым без него.
func (c *Client) SetSessionExpiredHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpired = fn
}

// ResetSessionExpired взводит уведомление заново после успешного логина
func (c *Client) ResetSessionExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notified = false
}

// Login выполняет аутентификацию пользователя.
// Запрос уходит без bearer token и мимо логики восстановления:
// 401 от /auth/login означает неверные учетные данные, а не истекшую сессию.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	var resp pkgapi.LoginResponse
	if err := c.send(ctx, request{method: http.MethodPost, path: "/api/v1/auth/login", body: payload}, &resp, false); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout уведомляет сервер о выходе. Идет через pipeline: если access token
// успел истечь, logout доедет после обычного refresh
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
}

// Me запрашивает актуальный дескриптор текущего пользователя
func (c *Client) Me(ctx context.Context) (*pkgapi.User, error) {
	var user pkgapi.User
	if err := c.call(ctx, http.MethodGet, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Get выполняет GET запрос через аутентифицированный pipeline
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.call(ctx, http.MethodGet, path, nil, result)
}

// Post выполняет POST запрос через аутентифицированный pipeline
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.call(ctx, http.MethodPost, path, body, result)
}

// Put выполняет PUT запрос через аутентифицированный pipeline
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.call(ctx, http.MethodPut, path, body, result)
}

// Patch выполняет PATCH запрос через аутентифицированный pipeline
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.call(ctx, http.MethodPatch, path, body, result)
}

// Delete выполняет DELETE запрос через аутентифицированный pipeline
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// request описывает один логический вызов API. Дескриптор неизменяем:
// повтор после refresh собирает новый http.Request из тех же полей,
// никакого общего мутируемого retry-флага между вызовами нет.
type request struct {
	method string
	path   string
	body   []byte
}

// call сериализует тело один раз и запускает pipeline с нулевым счетчиком попыток
func (c *Client) call(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}
	return c.do(ctx, request{method: method, path: path, body: payload}, result, 0)
}

// do реализует контракт pipeline:
//   - не-401 ответы (успех, валидационные ошибки, 404, 500, сетевые сбои)
//     возвращаются вызывающему как есть, без единой попытки refresh;
//   - первый 401 прозрачно лечится одним refresh + одним повтором;
//   - 401 на повторе или провал refresh означают смерть сессии: хранилище
//     чистится, подписчик уведомляется, вызывающий получает ErrSessionExpired.
func (c *Client) do(ctx context.Context, req request, result any, attempt int) error {
	err := c.send(ctx, req, result, true)
	if !isUnauthorized(err) {
		return err
	}

	if attempt > 0 {
		// Свежевыданный токен снова отвергнут: это не истечение,
		// а проблема на стороне сервера или отозванные права
		c.expireSession(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	if _, refreshErr := c.refreshTokens(ctx); refreshErr != nil {
		c.expireSession(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, refreshErr)
	}

	// Ровно один повтор исходного запроса с новым access token
	return c.do(ctx, req, result, attempt+1)
}

// send выполняет один HTTP обмен без какой-либо логики восстановления
func (c *Client) send(ctx context.Context, req request, result any, authenticated bool) error {
	var bodyReader io.Reader
	if req.body != nil {
		bodyReader = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-Id", uuid.New().String())

	if authenticated {
		// Без сохраненной сессии запрос уходит неаутентифицированным,
		// защищенные маршруты сервер отклонит сам
		if creds, err := c.store.GetCredentials(ctx); err == nil {
			httpReq.Header.Set("Authorization", "Bearer "+creds.AccessToken)
		} else if !errors.Is(err, storage.ErrCredentialsNotFound) {
			return fmt.Errorf("failed to read credentials: %w", err)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServerError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// expireSession выполняет процедуру невосстановимого auth-сбоя: чистит
// хранилище и не более одного раза на поколение сессии дергает подписчика.
// Очистка идемпотентна, поэтому параллельные сбои не плодят уведомлений.
func (c *Client) expireSession(ctx context.Context) {
	if err := c.store.DeleteCredentials(ctx); err != nil {
		c.logger.Warn("failed to clear credentials on session expiry", "error", err)
	}

	c.mu.Lock()
	fn := c.onExpired
	already := c.notified
	c.notified = true
	c.mu.Unlock()

	if fn != nil && !already {
		fn()
	}
}
