package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// OrderFilter описывает параметры списка заказов.
// Пустые значения не попадают в query string.
type OrderFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListOrders возвращает страницу заказов с учетом фильтров
func (s *Service) ListOrders(ctx context.Context, filter OrderFilter) (*pkgapi.OrderList, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var list pkgapi.OrderList
	if err := s.apiClient.Get(ctx, "/api/v1/admin/orders?"+query.Encode(), &list); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return &list, nil
}

// GetOrder возвращает заказ по идентификатору
func (s *Service) GetOrder(ctx context.Context, id string) (*pkgapi.Order, error) {
	var order pkgapi.Order
	path := "/api/v1/admin/orders/" + url.PathEscape(id)
	if err := s.apiClient.Get(ctx, path, &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus переводит заказ в новый статус
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (*pkgapi.Order, error) {
	var order pkgapi.Order
	path := "/api/v1/admin/orders/" + url.PathEscape(id) + "/status"
	body := pkgapi.UpdateOrderStatusRequest{Status: status}
	if err := s.apiClient.Patch(ctx, path, body, &order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &order, nil
}

// DeleteOrder удаляет заказ
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	path := "/api/v1/admin/orders/" + url.PathEscape(id)
	if err := s.apiClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
