package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/shopadmin/internal/client/admin"
	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

var ordersUsage = "Usage: shopadmin orders <list|get|status|delete> [args]"

// validOrderStatuses — статусы, которые принимает сервер
var validOrderStatuses = map[string]bool{
	pkgapi.OrderStatusPending:    true,
	pkgapi.OrderStatusProcessing: true,
	pkgapi.OrderStatusShipped:    true,
	pkgapi.OrderStatusDelivered:  true,
	pkgapi.OrderStatusCancelled:  true,
}

func (c *Cli) runOrders(ctx context.Context, args []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", ordersUsage)
	}

	switch args[0] {
	case "list":
		return c.runOrdersList(ctx, args[1:])
	case "get":
		return c.runOrdersGet(ctx, args[1:])
	case "status":
		return c.runOrdersStatus(ctx, args[1:])
	case "delete":
		return c.runOrdersDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], ordersUsage)
	}
}

func (c *Cli) runOrdersList(ctx context.Context, args []string) error {
	// Флаги подкоманды: shopadmin orders list --status pending --search ivan
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	status := fs.String("status", "", "Filter by order status")
	search := fs.String("search", "", "Search by customer name or email")
	page := fs.Int("page", 0, "Page number")
	limit := fs.Int("limit", 0, "Page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *status != "" && !validOrderStatuses[*status] {
		return fmt.Errorf("invalid status: %s. Use: pending, processing, shipped, delivered, cancelled", *status)
	}

	list, err := c.adminService.ListOrders(ctx, admin.OrderFilter{
		Status: *status,
		Search: *search,
		Page:   *page,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	c.io.Println("=== Orders ===")
	c.io.Println()

	if len(list.Orders) == 0 {
		c.io.Println("No orders found.")
		return nil
	}

	for _, o := range list.Orders {
		c.io.Printf("%s  %-12s %10s  %-25s %s\n",
			o.ID, o.Status, formatMoney(o.Total), truncate(o.CustomerName, 25),
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	c.io.Println()
	c.io.Printf("Page %d of %d total record(s), %d per page\n", list.Page, list.Total, list.Limit)

	return nil
}

func (c *Cli) runOrdersGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing order id. Usage: shopadmin orders get <id>")
	}

	order, err := c.adminService.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Order Details ===")
	c.io.Println()
	c.io.Printf("ID:       %s\n", order.ID)
	c.io.Printf("Status:   %s\n", order.Status)
	c.io.Printf("Customer: %s <%s>\n", order.CustomerName, order.CustomerEmail)
	c.io.Printf("Created:  %s\n", order.CreatedAt.Format(time.RFC3339))
	c.io.Println()
	c.io.Println("Items:")
	for _, item := range order.Items {
		c.io.Printf("  %-30s x%-3d %10s\n", truncate(item.ProductName, 30), item.Quantity, formatMoney(item.Price))
	}
	c.io.Println()
	c.io.Printf("Total: %s\n", formatMoney(order.Total))

	return nil
}

func (c *Cli) runOrdersStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: shopadmin orders status <id> <status>")
	}

	id, status := args[0], args[1]
	if !validOrderStatuses[status] {
		return fmt.Errorf("invalid status: %s. Use: pending, processing, shipped, delivered, cancelled", status)
	}

	order, err := c.adminService.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Order %s is now %s\n", order.ID, order.Status)
	return nil
}

func (c *Cli) runOrdersDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing order id. Usage: shopadmin orders delete <id>")
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete order %s?", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.adminService.DeleteOrder(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Order deleted!")
	return nil
}
