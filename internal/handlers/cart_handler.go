package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/catalog"
	"storefront/internal/services"
)

// CartHandler handles HTTP requests for the authenticated user's cart,
// including checkout.
type CartHandler struct {
	carts    *services.CartService
	catalog  *catalog.Catalog
	orders   *services.OrderService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService, cat *catalog.Catalog, orders *services.OrderService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		catalog:  cat,
		orders:   orders,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All routes
// require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/items/:productID", h.HandleAddItem)
	cartRoutes.Delete("/items/:productID", h.HandleRemoveItem)
	cartRoutes.Post("/items/:productID/increase", h.HandleIncreaseItem)
	cartRoutes.Post("/items/:productID/decrease", h.HandleDecreaseItem)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

// userID pulls the authenticated user id from the request context.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// HandleViewCart returns the cart's items and total.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	cart := h.carts.Cart(userID(c))
	items, total := cart.Snapshot()
	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

// HandleAddItem puts a product into the cart. The quantity query
// parameter defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	productID := c.Params("productID")
	product, ok := h.catalog.Get(productID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}

	quantity := c.QueryInt("quantity", 1)
	if quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Quantity must be at least 1",
		})
	}

	h.carts.Cart(userID(c)).Add(product, quantity)
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s added to cart", product.Name),
	})
}

// HandleRemoveItem deletes a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.carts.Cart(userID(c)).Remove(c.Params("productID"))
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleIncreaseItem bumps a line's quantity by one.
func (h *CartHandler) HandleIncreaseItem(c *fiber.Ctx) error {
	h.carts.Cart(userID(c)).Increase(c.Params("productID"))
	return c.JSON(fiber.Map{
		"message": "Quantity increased",
	})
}

// HandleDecreaseItem lowers a line's quantity by one, dropping the line
// at zero.
func (h *CartHandler) HandleDecreaseItem(c *fiber.Ctx) error {
	h.carts.Cart(userID(c)).Decrease(c.Params("productID"))
	return c.JSON(fiber.Map{
		"message": "Quantity decreased",
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.carts.Cart(userID(c)).Clear()
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// CheckoutRequest is the request body for checkout.
type CheckoutRequest struct {
	Payment         string `json:"payment" validate:"required"`
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	ZipCode         string `json:"zip_code" validate:"required"`
	Country         string `json:"country" validate:"required"`
	DeliveryCompany string `json:"delivery_company" validate:"required"`
}

// HandleCheckout converts the cart into a persisted order.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	uid := userID(c)
	cart := h.carts.Cart(uid)
	shipping := services.ShippingDetails{
		Address:         req.Address,
		City:            req.City,
		ZipCode:         req.ZipCode,
		Country:         req.Country,
		DeliveryCompany: req.DeliveryCompany,
	}

	result, err := h.orders.Checkout(uid, cart, shipping, req.Payment)
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", uid, err)
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Your cart is empty",
			})
		case errors.Is(err, services.ErrInvalidPayment):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please select a valid payment method",
			})
		case errors.Is(err, services.ErrIncompleteShipping):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please fill all shipment details",
			})
		case errors.Is(err, services.ErrPersistence):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Order could not be saved, please retry",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not complete checkout",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
