package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// ListUsers возвращает страницу пользователей
func (s *Service) ListUsers(ctx context.Context, page, limit int) (*pkgapi.UserList, error) {
	page, limit = normalizePage(page, limit)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var list pkgapi.UserList
	if err := s.apiClient.Get(ctx, "/api/v1/admin/users?"+query.Encode(), &list); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return &list, nil
}

// GetUser возвращает пользователя по идентификатору
func (s *Service) GetUser(ctx context.Context, id string) (*pkgapi.User, error) {
	var user pkgapi.User
	path := "/api/v1/admin/users/" + url.PathEscape(id)
	if err := s.apiClient.Get(ctx, path, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// UpdateUserRole меняет роль пользователя
func (s *Service) UpdateUserRole(ctx context.Context, id, role string) (*pkgapi.User, error) {
	var user pkgapi.User
	path := "/api/v1/admin/users/" + url.PathEscape(id) + "/role"
	body := pkgapi.UpdateUserRoleRequest{Role: role}
	if err := s.apiClient.Patch(ctx, path, body, &user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return &user, nil
}

// SetUserActive включает или блокирует учетную запись
func (s *Service) SetUserActive(ctx context.Context, id string, active bool) (*pkgapi.User, error) {
	var user pkgapi.User
	path := "/api/v1/admin/users/" + url.PathEscape(id) + "/status"
	body := pkgapi.UpdateUserStatusRequest{IsActive: active}
	if err := s.apiClient.Patch(ctx, path, body, &user); err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	return &user, nil
}

// DeleteUser удаляет пользователя
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	path := "/api/v1/admin/users/" + url.PathEscape(id)
	if err := s.apiClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
