package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// productRecord is the on-disk shape of one catalog entry.
type productRecord struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Type   string          `json:"type"`
	Rating int             `json:"rating"`
}

// Catalog is the read-only set of products available in the store. It is
// loaded once at startup and never mutated, so lookups need no locking.
type Catalog struct {
	products map[string]models.Product
	ordered  []models.Product
}

// Load reads the catalog JSON file and builds the product lookup table.
// Duplicate product ids and unknown category types are load errors.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	products := make(map[string]models.Product, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", rec.Name)
		}
		if _, exists := products[rec.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog", rec.ID)
		}
		category, err := models.ParseProductCategory(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", rec.ID, err)
		}
		products[rec.ID] = models.Product{
			ID:       rec.ID,
			Name:     rec.Name,
			Price:    rec.Price,
			Image:    rec.Image,
			Category: category,
			Rating:   rec.Rating,
		}
	}

	ordered := make([]models.Product, 0, len(products))
	for _, p := range products {
		ordered = append(ordered, p)
	}
	// Stable listing order so pagination is deterministic.
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Catalog{products: products, ordered: ordered}, nil
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// List returns all products sorted by id.
func (c *Catalog) List() []models.Product {
	return c.ordered
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Page returns one page of products and the total page count. Pages are
// 1-based; out-of-range pages return an empty slice.
func (c *Catalog) Page(page, perPage int) ([]models.Product, int) {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(c.ordered) + perPage - 1) / perPage
	if page < 1 || page > totalPages {
		return nil, totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(c.ordered) {
		end = len(c.ordered)
	}
	return c.ordered[start:end], totalPages
}
