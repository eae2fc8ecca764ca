package admin

import (
	"context"
	"fmt"
	"net/url"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// GetDashboardStats возвращает сводные показатели магазина
func (s *Service) GetDashboardStats(ctx context.Context) (*pkgapi.DashboardStats, error) {
	var stats pkgapi.DashboardStats
	if err := s.apiClient.Get(ctx, "/api/v1/admin/dashboard/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return &stats, nil
}

// GetOrderStats возвращает распределение заказов по статусам
func (s *Service) GetOrderStats(ctx context.Context) (*pkgapi.OrderStats, error) {
	var stats pkgapi.OrderStats
	if err := s.apiClient.Get(ctx, "/api/v1/admin/dashboard/orders-stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch order stats: %w", err)
	}
	return &stats, nil
}

// GetRevenueChart возвращает точки выручки за период (например "7d", "30d")
func (s *Service) GetRevenueChart(ctx context.Context, period string) (*pkgapi.RevenueChart, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	path := "/api/v1/admin/dashboard/revenue-chart"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var chart pkgapi.RevenueChart
	if err := s.apiClient.Get(ctx, path, &chart); err != nil {
		return nil, fmt.Errorf("failed to fetch revenue chart: %w", err)
	}
	return &chart, nil
}
