package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runDashboard(ctx context.Context, args []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	period := ""
	if len(args) > 0 {
		period = args[0]
	}

	stats, err := c.adminService.GetDashboardStats(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Dashboard ===")
	c.io.Println()
	c.io.Printf("Total revenue:  %s\n", formatMoney(stats.TotalRevenue))
	c.io.Printf("Total orders:   %d\n", stats.TotalOrders)
	c.io.Printf("Total products: %d\n", stats.TotalProducts)
	c.io.Printf("Total users:    %d\n", stats.TotalUsers)
	c.io.Printf("Pending orders: %d\n", stats.PendingOrders)
	if stats.LowStockCount > 0 {
		c.io.Printf("⚠️  Low stock:   %d product(s)\n", stats.LowStockCount)
	}

	orderStats, err := c.adminService.GetOrderStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order stats: %w", err)
	}

	c.io.Println()
	c.io.Println("Orders by status:")

	// Сортируем статусы для стабильного вывода
	statuses := make([]string, 0, len(orderStats.ByStatus))
	for status := range orderStats.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		c.io.Printf("  %-12s %d\n", status, orderStats.ByStatus[status])
	}

	chart, err := c.adminService.GetRevenueChart(ctx, period)
	if err != nil {
		return fmt.Errorf("failed to load revenue chart: %w", err)
	}

	c.io.Println()
	c.io.Printf("Revenue (%s):\n", chart.Period)
	for _, point := range chart.Points {
		c.io.Printf("  %s  %10s  %d order(s)\n", point.Date, formatMoney(point.Revenue), point.Orders)
	}

	return nil
}
