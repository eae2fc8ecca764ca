package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/shopadmin/internal/client/api"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	// Проверяем наличие локальной сессии
	if err := c.requireAuth(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'shopadmin login' to authenticate.")
			return nil
		}
		return err
	}

	// Локальная сессия есть — проверяем ее на сервере.
	// Validate сам пройдет через refresh при протухшем access token.
	user, err := c.sessionService.Validate(ctx)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			c.io.Println("Status: Session expired")
			c.io.Println()
			c.io.Println("Run 'shopadmin login' to authenticate again.")
			return nil
		}
		return fmt.Errorf("failed to validate session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:   %s\n", user.Name)
	c.io.Printf("Email:  %s\n", user.Email)
	c.io.Printf("Role:   %s\n", user.Role)
	if !user.IsActive {
		c.io.Println("⚠️  Account is deactivated.")
	}

	return nil
}
