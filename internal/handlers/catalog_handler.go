package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/catalog"
)

// productsPerPage matches the storefront grid: 2 rows of 3.
const productsPerPage = 6

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
}

// HandleListProducts returns one page of the catalog.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	products, totalPages := h.catalog.Page(page, productsPerPage)
	return c.JSON(fiber.Map{
		"products":    products,
		"page":        page,
		"total_pages": totalPages,
	})
}

// HandleGetProduct returns a single product by id.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, ok := h.catalog.Get(productID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}
	return c.JSON(product)
}
