package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/shopadmin/internal/client/api"
	"github.com/iudanet/shopadmin/internal/client/storage"
	"github.com/iudanet/shopadmin/internal/validation"
	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// Service предоставляет остальному приложению состояние сессии: login,
// logout, текущего пользователя и производные флаги isAuthenticated/isAdmin.
// Хранилище учетных данных остается единственным источником истины,
// дескриптор пользователя кэшируется в памяти для синхронных чтений.
type Service struct {
	apiClient *api.Client
	store     storage.CredentialStorage
	logger    *slog.Logger
	onExpired func()

	mu      sync.Mutex
	user    *pkgapi.User
	loading bool
}

// NewService создает новый сервис сессии и подписывается на уведомление
// pipeline о принудительном завершении сессии
func NewService(apiClient *api.Client, store storage.CredentialStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		loading:   true,
	}
	apiClient.SetSessionExpiredHandler(s.handleSessionExpired)
	return s
}

// OnSessionExpired регистрирует обработчик уровня приложения (аналог
// редиректа на экран логина). Вызывается после того, как сессия уже
// очищена локально.
func (s *Service) OnSessionExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = fn
}

// Restore инициализирует состояние при старте процесса: читает хранилище
// и поднимает кэшированного пользователя. Сетевых вызовов нет — проверка
// живости токенов произойдет при первом же запросе через pipeline.
func (s *Service) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if _, err := s.store.GetCredentials(ctx); err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil // сессии нет, это не ошибка
		}
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	user, err := s.store.GetCachedUser(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read cached user: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Login выполняет аутентификацию и сохраняет сессию.
// При ошибке сервера сохраненное состояние не трогается.
func (s *Service) Login(ctx context.Context, email, password string) (*pkgapi.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	user := resp.User
	creds := &storage.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}

	// Оба токена и пользователь сохраняются атомарно
	if err := s.store.SaveCredentials(ctx, creds, &user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.loading = false
	s.mu.Unlock()

	// Новая сессия: взводим уведомление о ее смерти заново
	s.apiClient.ResetSessionExpired()

	s.logger.Debug("login successful", "email", user.Email, "role", user.Role)
	return &user, nil
}

// Logout выполняет выход из системы. Сервер уведомляется best effort:
// сетевой сбой логируется и никогда не блокирует локальную очистку.
// Повторный logout ничего не делает и не возвращает ошибку.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.store.GetCredentials(ctx)
	switch {
	case errors.Is(err, storage.ErrCredentialsNotFound):
		// Сессии нет, чистить нечего
		s.logger.Debug("logout without stored session")
	case err != nil:
		s.logger.Warn("failed to read credentials during logout", "error", err)
	default:
		if logoutErr := s.apiClient.Logout(ctx); logoutErr != nil {
			// Не прерываем процесс, если сервер недоступен
			s.logger.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	// Всегда удаляем локальные данные, даже если сервер недоступен
	if err := s.store.DeleteCredentials(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Validate перепроверяет сессию вызовом /auth/me через pipeline:
// истекший access token лечится обычным refresh, мертвая сессия
// завершится стандартной процедурой. На успехе кэшированный дескриптор
// обновляется данными сервера.
func (s *Service) Validate(ctx context.Context) (*pkgapi.User, error) {
	user, err := s.apiClient.Me(ctx)
	if err != nil {
		return nil, err
	}

	creds, err := s.store.GetCredentials(ctx)
	if err == nil {
		if saveErr := s.store.SaveCredentials(ctx, creds, user); saveErr != nil {
			s.logger.Warn("failed to update cached user", "error", saveErr)
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// CurrentUser возвращает кэшированный дескриптор текущего пользователя.
// Только для отображения и гейтинга UI: сервер остается источником истины
// для привилегированных операций.
func (s *Service) CurrentUser() *pkgapi.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated сообщает, есть ли сессия
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsAdmin сообщает, имеет ли текущий пользователь административную роль
func (s *Service) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsAdmin()
}

// Loading сообщает, было ли состояние сессии уже восстановлено из хранилища
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// handleSessionExpired вызывается pipeline после очистки хранилища
func (s *Service) handleSessionExpired() {
	s.mu.Lock()
	s.user = nil
	fn := s.onExpired
	s.mu.Unlock()

	s.logger.Warn("session expired, login required")
	if fn != nil {
		fn()
	}
}
