package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     string
	Role      Role
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PendingOTP is a live passcode bound to an email address. At most one
// exists per email; issuing a new one overwrites the previous.
type PendingOTP struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

func (p PendingOTP) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	Stock       int
	Unit        string
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem snapshots the product name and unit price at order time, so
// later catalog edits never alter historical orders.
type OrderItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

type Order struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerEmail string
	CustomerPhone string
	Address       string
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	DeliveryTime  string
	OrderDate     time.Time
	UpdatedAt     time.Time
}
