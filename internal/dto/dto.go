package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-api/internal/model"
)

// --- Auth ---

type RegisterAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type AuthResponse struct {
	UserID uuid.UUID  `json:"userId"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
}

// --- Catalog ---

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Active      bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Stock       int             `json:"stockQuantity" binding:"min=0"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"imageUrl"`
}

type ListProductsRequest struct {
	CategoryID string `form:"categoryId"`
	Search     string `form:"search"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Stock       int             `json:"stockQuantity"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"imageUrl"`
	Active      bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// --- Orders ---

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	// Price is accepted for backward compatibility with older clients but
	// ignored; the unit price is always read from the catalog.
	Price decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	CustomerID    uuid.UUID          `json:"customerId" binding:"required"`
	CustomerEmail string             `json:"customerEmail" binding:"required,email"`
	CustomerPhone string             `json:"customerPhone"`
	Address       string             `json:"deliveryAddress" binding:"required"`
	Items         []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount   *decimal.Decimal   `json:"totalAmount"`
}

type ListOrdersRequest struct {
	CustomerID string `form:"customerId"`
	Status     string `form:"status"`
}

type UpdateOrderStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	DeliveryTime string `json:"deliveryTime"`
}

type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customerId"`
	CustomerEmail string              `json:"customerEmail"`
	CustomerPhone string              `json:"customerPhone"`
	Address       string              `json:"deliveryAddress"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	Status        model.OrderStatus   `json:"status"`
	DeliveryTime  string              `json:"deliveryTime,omitempty"`
	OrderDate     time.Time           `json:"orderDate"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
