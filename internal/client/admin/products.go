package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// ListProducts возвращает страницу каталога товаров
func (s *Service) ListProducts(ctx context.Context, page, limit int) (*pkgapi.ProductList, error) {
	page, limit = normalizePage(page, limit)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var list pkgapi.ProductList
	if err := s.apiClient.Get(ctx, "/api/v1/admin/products?"+query.Encode(), &list); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return &list, nil
}

// GetProduct возвращает товар по идентификатору
func (s *Service) GetProduct(ctx context.Context, id string) (*pkgapi.Product, error) {
	var product pkgapi.Product
	path := "/api/v1/admin/products/" + url.PathEscape(id)
	if err := s.apiClient.Get(ctx, path, &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

// CreateProduct создает новый товар
func (s *Service) CreateProduct(ctx context.Context, input pkgapi.ProductInput) (*pkgapi.Product, error) {
	var product pkgapi.Product
	if err := s.apiClient.Post(ctx, "/api/v1/admin/products", input, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct обновляет существующий товар целиком
func (s *Service) UpdateProduct(ctx context.Context, id string, input pkgapi.ProductInput) (*pkgapi.Product, error) {
	var product pkgapi.Product
	path := "/api/v1/admin/products/" + url.PathEscape(id)
	if err := s.apiClient.Put(ctx, path, input, &product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteProduct удаляет товар
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	path := "/api/v1/admin/products/" + url.PathEscape(id)
	if err := s.apiClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
