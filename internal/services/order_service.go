package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/payments"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// Checkout failure modes, checked in this order.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrIncompleteShipping = errors.New("incomplete shipping details")
	ErrInvalidStatus      = errors.New("invalid order status")
	// ErrPersistence wraps storage failures during checkout; the cart is
	// left untouched and the caller may retry.
	ErrPersistence = errors.New("order could not be persisted")
)

// TaxRate is the fixed 10% tax applied to the subtotal.
var TaxRate = decimal.NewFromFloat(0.10)

// DeliveryLeadTime is how far past the order date the delivery date is set.
const DeliveryLeadTime = 3 * 24 * time.Hour

// ShippingDetails carries the shipment fields collected at checkout.
type ShippingDetails struct {
	Address         string `json:"address"`
	City            string `json:"city"`
	ZipCode         string `json:"zip_code"`
	Country         string `json:"country"`
	DeliveryCompany string `json:"delivery_company"`
}

// complete reports whether every required shipping field is non-empty.
func (d ShippingDetails) complete() bool {
	return d.Address != "" && d.City != "" && d.ZipCode != "" && d.Country != "" && d.DeliveryCompany != ""
}

// CheckoutResult is what a successful checkout hands back to the caller:
// the persisted order plus the payment confirmation and per-item
// fulfillment messages, which are not part of the order record.
type CheckoutResult struct {
	Order        *models.Order `json:"order"`
	Confirmation string        `json:"confirmation"`
	Fulfillments []string      `json:"fulfillments"`
}

// OrderService handles checkout and the order lifecycle.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
	now       func() time.Time
}

// NewOrderService creates a new OrderService. mqClient may be nil, in
// which case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
		now:       time.Now,
	}
}

// Checkout converts the cart into a persisted order.
//
// Validation happens before any side effect: an empty cart, an unknown
// payment selector or missing shipping fields each fail with their own
// error and leave the cart untouched. Totals are computed with decimal
// arithmetic: tax is 10% of the subtotal, and both tax and grand total
// are rounded half-up to 2 places. The order row and its item snapshots are
// persisted as one transaction; only after that commit is the cart
// cleared, so a storage failure never loses the cart or leaves a partial
// order behind.
func (s *OrderService) Checkout(userID string, cart *models.Cart, shipping ShippingDetails, paymentSelector string) (*CheckoutResult, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	method, ok := payments.Resolve(paymentSelector)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayment, paymentSelector)
	}
	if !shipping.complete() {
		return nil, ErrIncompleteShipping
	}

	items, subtotal := cart.Snapshot()
	tax := subtotal.Mul(TaxRate).Round(2)
	grandTotal := subtotal.Add(tax).Round(2)

	// Stub settlement: always succeeds, charge is the subtotal.
	confirmation := method.Pay(subtotal)

	orderDate := s.now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Address:         shipping.Address,
		City:            shipping.City,
		ZipCode:         shipping.ZipCode,
		Country:         shipping.Country,
		DeliveryCompany: shipping.DeliveryCompany,
		PaymentMethod:   method.Label,
		OrderDate:       orderDate,
		DeliveryDate:    orderDate.Add(DeliveryLeadTime),
		Status:          models.StatusConfirmed,
		Subtotal:        subtotal,
		Tax:             tax,
		GrandTotal:      grandTotal,
	}

	fulfillments := make([]string, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductName: item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Image:       item.Image,
		})
		fulfillments = append(fulfillments, fulfillmentFor(item))
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	cart.Clear()

	s.publishEvent("order.created", map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     order.UserID,
		"status":      order.Status,
		"grand_total": order.GrandTotal,
	})

	return &CheckoutResult{
		Order:        order,
		Confirmation: confirmation,
		Fulfillments: fulfillments,
	}, nil
}

// fulfillmentFor rebuilds a product from a cart item view just to dispatch
// its category's fulfillment message.
func fulfillmentFor(item models.CartItemView) string {
	return models.Product{ID: item.ProductID, Name: item.Name, Category: item.Category}.Fulfillment()
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// TotalRevenue sums the grand totals of all orders.
func (s *OrderService) TotalRevenue() (decimal.Decimal, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return decimal.Zero, err
	}
	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.GrandTotal)
	}
	return revenue, nil
}

// UpdateOrderStatus moves an order to a new status. The status must be a
// member of the closed enumeration; any recognized status may follow any
// other, there are no transition-adjacency rules.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_changed", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

// DeleteOrder removes an order and all of its item snapshots. Irreversible.
func (s *OrderService) DeleteOrder(id string) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

// publishEvent sends an order event to the message queue. Publication is
// best-effort: failures are logged and never fail the triggering operation.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
