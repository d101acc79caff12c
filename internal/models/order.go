package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of states an order can be in. Orders start
// as Confirmed; administrators move them through the remaining states.
type OrderStatus string

const (
	StatusConfirmed  OrderStatus = "Confirmed"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is a recognized order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of one cart line taken at checkout.
// Product name, price and image are copied so later catalog edits never
// alter historical orders.
type OrderItem struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string          `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductName string          `json:"product_name" gorm:"type:varchar(200)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image" gorm:"type:varchar(255)"`
}

// Order is a persisted customer order. Everything except Status is
// immutable after checkout; totals are computed once at creation and never
// recomputed from mutable state.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Address         string          `json:"address" gorm:"type:varchar(200)"`
	City            string          `json:"city" gorm:"type:varchar(100)"`
	ZipCode         string          `json:"zip_code" gorm:"type:varchar(20)"`
	Country         string          `json:"country" gorm:"type:varchar(100)"`
	DeliveryCompany string          `json:"delivery_company" gorm:"type:varchar(50)"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(50)"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(50)"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	Tax             decimal.Decimal `json:"tax" gorm:"type:decimal(12,2)"`
	GrandTotal      decimal.Decimal `json:"grand_total" gorm:"type:decimal(12,2)"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
