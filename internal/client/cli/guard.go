package cli

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated — локальной сессии нет, команда требует логин
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'shopadmin login' first")
	// ErrAccessDenied — сессия есть, но роль не admin
	ErrAccessDenied = errors.New("access denied: admin role required")
)

// requireAuth восстанавливает сессию из хранилища (если еще не восстановлена)
// и проверяет, что пользователь залогинен. Решение принимается только после
// Restore: до этого состояние сессии неизвестно.
func (c *Cli) requireAuth(ctx context.Context) error {
	if c.sessionService.Loading() {
		if err := c.sessionService.Restore(ctx); err != nil {
			return fmt.Errorf("failed to restore session: %w", err)
		}
	}
	if !c.sessionService.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// requireAdmin — как requireAuth, но дополнительно требует роль admin
func (c *Cli) requireAdmin(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if !c.sessionService.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
