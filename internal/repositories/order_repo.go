package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrOrderNotFound is returned by lookups, status updates and deletions
// that reference an order id with no persisted order.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access. Create
// must persist the order and all of its item snapshots atomically: either
// the whole order lands or nothing does.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	Delete(id string) error
}
