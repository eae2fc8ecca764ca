package api

import "time"

// Роли пользователей в админ-панели
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`  // короткоживущий bearer token
	RefreshToken string `json:"refreshToken"` // токен для обновления пары
	User         User   `json:"user"`         // данные вошедшего пользователя
}

// RefreshRequest представляет запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"` // текущий refresh token
}

// RefreshResponse представляет ответ с новой парой токенов
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`  // новый access token
	RefreshToken string `json:"refreshToken"` // новый refresh token
}

// User представляет пользователя магазина.
// Клиент использует role только для отображения и гейтинга UI,
// сервер остается источником истины для любых привилегированных операций.
type User struct {
	CreatedAt time.Time `json:"createdAt"` // дата регистрации
	ID        string    `json:"id"`        // идентификатор пользователя
	Name      string    `json:"name"`      // отображаемое имя
	Email     string    `json:"email"`     // email
	Role      string    `json:"role"`      // "admin" или "user"
	IsActive  bool      `json:"isActive"`  // активна ли учетная запись
}

// IsAdmin сообщает, имеет ли пользователь административную роль
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // описание ошибки
}
