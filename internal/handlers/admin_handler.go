package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// AdminHandler handles the administrator console: order management and
// admin account creation. All routes must be registered behind the
// AdminRequired middleware.
type AdminHandler struct {
	orders *services.OrderService
	auth   *services.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orders *services.OrderService, auth *services.AuthService) *AdminHandler {
	return &AdminHandler{
		orders: orders,
		auth:   auth,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/orders", h.HandleListOrders)
	adminRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
	adminRoutes.Delete("/orders/:id", h.HandleDeleteOrder)
	adminRoutes.Post("/register", h.HandleRegisterAdmin)
}

// HandleListOrders returns all orders plus the total revenue, newest first.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	revenue, err := h.orders.TotalRevenue()
	if err != nil {
		log.Printf("Error computing total revenue: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute revenue",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"orders":        orders,
		"total_revenue": revenue,
	})
}

// HandleUpdateOrderStatus moves an order to a new status.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update",
		})
	}

	err := h.orders.UpdateOrderStatus(orderID, models.OrderStatus(updateData.Status))
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Unrecognized order status %q", updateData.Status),
			})
		case errors.Is(err, repositories.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update order status",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

// HandleDeleteOrder removes an order and its items.
func (h *AdminHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if err := h.orders.DeleteOrder(orderID); err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete order",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s deleted", orderID),
	})
}

// HandleRegisterAdmin creates a new administrator account. Only reachable
// by an existing administrator.
func (h *AdminHandler) HandleRegisterAdmin(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing admin register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.auth.RegisterAdmin(&user); err != nil {
		log.Printf("Error registering admin: %v", err)
		if strings.Contains(err.Error(), "already taken") || strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register admin",
			"error":   err.Error(),
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin registered successfully",
		"user":    user,
	})
}
