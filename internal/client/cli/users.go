package cli

import (
	"context"
	"fmt"
	"time"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

var usersUsage = "Usage: shopadmin users <list|get|role|activate|deactivate|delete> [args]"

func (c *Cli) runUsers(ctx context.Context, args []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", usersUsage)
	}

	switch args[0] {
	case "list":
		return c.runUsersList(ctx, args[1:])
	case "get":
		return c.runUsersGet(ctx, args[1:])
	case "role":
		return c.runUsersRole(ctx, args[1:])
	case "activate":
		return c.runUsersSetActive(ctx, args[1:], true)
	case "deactivate":
		return c.runUsersSetActive(ctx, args[1:], false)
	case "delete":
		return c.runUsersDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], usersUsage)
	}
}

func (c *Cli) runUsersList(ctx context.Context, args []string) error {
	page, limit, err := parsePageArgs(args)
	if err != nil {
		return err
	}

	list, err := c.adminService.ListUsers(ctx, page, limit)
	if err != nil {
		return err
	}

	c.io.Println("=== Users ===")
	c.io.Println()

	if len(list.Users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	for _, u := range list.Users {
		c.io.Printf("%s  %-25s %-30s %-6s %s\n",
			u.ID, truncate(u.Name, 25), truncate(u.Email, 30), u.Role, formatActive(u.IsActive))
	}
	c.io.Println()
	c.io.Printf("Page %d of %d total record(s), %d per page\n", list.Page, list.Total, list.Limit)

	return nil
}

func (c *Cli) runUsersGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user id. Usage: shopadmin users get <id>")
	}

	user, err := c.adminService.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== User Details ===")
	c.io.Println()
	c.io.Printf("ID:      %s\n", user.ID)
	c.io.Printf("Name:    %s\n", user.Name)
	c.io.Printf("Email:   %s\n", user.Email)
	c.io.Printf("Role:    %s\n", user.Role)
	c.io.Printf("Status:  %s\n", formatActive(user.IsActive))
	c.io.Printf("Created: %s\n", user.CreatedAt.Format(time.RFC3339))

	return nil
}

func (c *Cli) runUsersRole(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: shopadmin users role <id> <admin|user>")
	}

	id, role := args[0], args[1]
	if role != pkgapi.RoleAdmin && role != pkgapi.RoleUser {
		return fmt.Errorf("invalid role: %s. Use: admin or user", role)
	}

	user, err := c.adminService.UpdateUserRole(ctx, id, role)
	if err != nil {
		return err
	}

	c.io.Printf("✓ User %s role is now %s\n", user.ID, user.Role)
	return nil
}

func (c *Cli) runUsersSetActive(ctx context.Context, args []string, active bool) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user id. %s", usersUsage)
	}

	user, err := c.adminService.SetUserActive(ctx, args[0], active)
	if err != nil {
		return err
	}

	c.io.Printf("✓ User %s is now %s\n", user.ID, formatActive(user.IsActive))
	return nil
}

func (c *Cli) runUsersDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user id. Usage: shopadmin users delete <id>")
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete user %s?", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.adminService.DeleteUser(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ User deleted!")
	return nil
}
