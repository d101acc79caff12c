package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/repositories"
	"storefront/internal/services"
)

// OrderHandler handles HTTP requests for a customer's own orders:
// lookup, tracking and invoice download.
type OrderHandler struct {
	orders   *services.OrderService
	invoices *services.InvoiceService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *services.OrderService, invoices *services.InvoiceService) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		invoices: invoices,
	}
}

// RegisterRoutes registers the authenticated order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Get("/:id/invoice", h.HandleGetInvoice)
}

// RegisterTrackingRoute registers the public order tracking endpoint.
func (h *OrderHandler) RegisterTrackingRoute(router fiber.Router) {
	router.Get("/track/:id", h.HandleTrackOrder)
}

// ownsOrder reports whether the requester may read the given order:
// either they placed it or they are an administrator.
func ownsOrder(c *fiber.Ctx, orderUserID string) bool {
	isAdmin, _ := c.Locals("is_admin").(bool)
	return isAdmin || userID(c) == orderUserID
}

// HandleGetOrder returns a single order, restricted to its owner or an
// administrator.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orders.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	if !ownsOrder(c, order.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}
	return c.JSON(order)
}

// HandleGetInvoice renders the plain-text invoice for an order.
func (h *OrderHandler) HandleGetInvoice(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orders.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting order %s for invoice: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	if !ownsOrder(c, order.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	invoice, err := h.invoices.Build(order)
	if err != nil {
		log.Printf("Error building invoice for order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build invoice",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=invoice_%s.txt", orderID))
	return c.Send(h.invoices.RenderText(invoice))
}

// HandleTrackOrder returns the public tracking view of an order: status
// and delivery information only.
func (h *OrderHandler) HandleTrackOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orders.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error tracking order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"order_id":         order.ID,
		"status":           order.Status,
		"delivery_company": order.DeliveryCompany,
		"delivery_date":    order.DeliveryDate,
	})
}
