package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

// Ошибки аутентификационного слоя
var (
	// ErrNoRefreshToken indicates that refresh was requested without a stored refresh token
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrRefreshFailed indicates that the refresh endpoint rejected the stored refresh token
	ErrRefreshFailed = errors.New("token refresh failed")

	// ErrSessionExpired indicates an unrecoverable auth failure: the local
	// session has been cleared and the operator has to login again
	ErrSessionExpired = errors.New("session expired")
)

// Error represents a non-2xx server response. Не-401 ответы проходят через
// pipeline без интерпретации: вызывающая сторона видит статус и сообщение
// сервера как есть.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// newServerError разбирает тело ошибки сервера ({"message": ...});
// если тело не JSON, сообщением становится сырой текст
func newServerError(statusCode int, body []byte) *Error {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &Error{StatusCode: statusCode, Message: errResp.Message}
	}
	return &Error{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}

// isUnauthorized сообщает, является ли ошибка ответом 401
func isUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
