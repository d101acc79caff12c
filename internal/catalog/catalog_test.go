package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

const catalogJSON = `[
  {"id": "prod-1", "name": "Keyboard", "price": 75.00, "image": "kb.jpg", "type": "physical", "rating": 5},
  {"id": "prod-2", "name": "E-book", "price": 9.99, "image": "ebook.png", "type": "digital", "rating": 3},
  {"id": "prod-3", "name": "Streaming", "price": 12.50, "image": "stream.png", "type": "subscription", "rating": 4}
]`

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	assert.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	cat, err := catalog.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	keyboard, ok := cat.Get("prod-1")
	assert.True(t, ok)
	assert.Equal(t, "Keyboard", keyboard.Name)
	assert.Equal(t, models.CategoryPhysical, keyboard.Category)
	assert.True(t, keyboard.Price.Equal(decimal.NewFromFloat(75.00)))
	assert.Equal(t, 5, keyboard.Rating)

	_, ok = cat.Get("prod-99")
	assert.False(t, ok)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	// Unknown category
	_, err := catalog.Parse([]byte(`[{"id": "p1", "name": "X", "price": 1, "type": "vaporware"}]`))
	assert.Error(t, err)

	// Duplicate id
	_, err = catalog.Parse([]byte(`[
		{"id": "p1", "name": "X", "price": 1, "type": "physical"},
		{"id": "p1", "name": "Y", "price": 2, "type": "digital"}
	]`))
	assert.Error(t, err)

	// Missing id
	_, err = catalog.Parse([]byte(`[{"name": "X", "price": 1, "type": "physical"}]`))
	assert.Error(t, err)

	// Malformed JSON
	_, err = catalog.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestCatalogListIsSortedByID(t *testing.T) {
	cat, err := catalog.Parse([]byte(catalogJSON))
	assert.NoError(t, err)

	list := cat.List()
	assert.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestCatalogPagination(t *testing.T) {
	cat, err := catalog.Parse([]byte(catalogJSON))
	assert.NoError(t, err)

	page1, totalPages := cat.Page(1, 2)
	assert.Equal(t, 2, totalPages)
	assert.Len(t, page1, 2)
	assert.Equal(t, "prod-1", page1[0].ID)

	page2, _ := cat.Page(2, 2)
	assert.Len(t, page2, 1)
	assert.Equal(t, "prod-3", page2[0].ID)

	outOfRange, _ := cat.Page(3, 2)
	assert.Empty(t, outOfRange)

	before, _ := cat.Page(0, 2)
	assert.Empty(t, before)
}
