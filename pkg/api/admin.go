package api

import "time"

// Статусы заказов
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Product представляет товар каталога
type Product struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
}

// ProductInput представляет данные для создания/обновления товара
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"isActive"`
}

// Category представляет категорию каталога
type Category struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// CategoryInput представляет данные для создания/обновления категории
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Order представляет заказ покупателя
type Order struct {
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Status        string      `json:"status"` // см. OrderStatus* константы
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
}

// UpdateOrderStatusRequest представляет запрос на смену статуса заказа
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateUserRoleRequest представляет запрос на смену роли пользователя
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserStatusRequest представляет запрос на де/активацию пользователя
type UpdateUserStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// ProductList представляет страницу списка товаров
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"` // общее количество записей
	Page     int       `json:"page"`  // номер текущей страницы (с 1)
	Limit    int       `json:"limit"` // размер страницы
}

// CategoryList представляет список категорий (без пагинации)
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// OrderList представляет страницу списка заказов
type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// UserList представляет страницу списка пользователей
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// DashboardStats представляет сводные показатели магазина
type DashboardStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalUsers    int     `json:"totalUsers"`
	PendingOrders int     `json:"pendingOrders"`
	LowStockCount int     `json:"lowStockCount"`
}

// OrderStats представляет распределение заказов по статусам
type OrderStats struct {
	ByStatus map[string]int `json:"byStatus"`
}

// RevenuePoint представляет точку графика выручки
type RevenuePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// RevenueChart представляет данные графика выручки за период
type RevenueChart struct {
	Period string         `json:"period"` // week, month, year
	Points []RevenuePoint `json:"points"`
}
