package admin

import (
	"context"
	"log/slog"
)

//go:generate moq -out client_mock.go . APIClient

// APIClient определяет операции транспорта, нужные админ-сервисам.
// Реализуется аутентифицированным pipeline: сервисы не знают ни про
// токены, ни про refresh — восстановимые auth-сбои здесь невидимы.
type APIClient interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Put(ctx context.Context, path string, body, result any) error
	Patch(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string) error
}

// Service предоставляет операции бэк-офиса: товары, категории, заказы,
// пользователи и сводка. Тонкий слой над pipeline: вся логика — на сервере.
type Service struct {
	apiClient APIClient
	logger    *slog.Logger
}

// NewService создает новый админ-сервис
func NewService(apiClient APIClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		logger:    logger,
	}
}

// Параметры пагинации по умолчанию
const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePage подставляет значения по умолчанию вместо невалидных
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
