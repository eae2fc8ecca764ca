package admin

import (
	"context"
	"fmt"
	"net/url"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// ListCategories возвращает все категории каталога (без пагинации)
func (s *Service) ListCategories(ctx context.Context) (*pkgapi.CategoryList, error) {
	var list pkgapi.CategoryList
	if err := s.apiClient.Get(ctx, "/api/v1/admin/categories", &list); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return &list, nil
}

// GetCategory возвращает категорию по идентификатору
func (s *Service) GetCategory(ctx context.Context, id string) (*pkgapi.Category, error) {
	var category pkgapi.Category
	path := "/api/v1/admin/categories/" + url.PathEscape(id)
	if err := s.apiClient.Get(ctx, path, &category); err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return &category, nil
}

// CreateCategory создает новую категорию
func (s *Service) CreateCategory(ctx context.Context, input pkgapi.CategoryInput) (*pkgapi.Category, error) {
	var category pkgapi.Category
	if err := s.apiClient.Post(ctx, "/api/v1/admin/categories", input, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory обновляет существующую категорию
func (s *Service) UpdateCategory(ctx context.Context, id string, input pkgapi.CategoryInput) (*pkgapi.Category, error) {
	var category pkgapi.Category
	path := "/api/v1/admin/categories/" + url.PathEscape(id)
	if err := s.apiClient.Put(ctx, path, input, &category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory удаляет категорию
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	path := "/api/v1/admin/categories/" + url.PathEscape(id)
	if err := s.apiClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
