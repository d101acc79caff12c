package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var dbSequence atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbSequence.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return db
}

func sampleOrder(userID string) *models.Order {
	now := time.Now()
	return &models.Order{
		UserID:          userID,
		Address:         "1 Market Street",
		City:            "Lisbon",
		ZipCode:         "1100-001",
		Country:         "Portugal",
		DeliveryCompany: "DHL",
		PaymentMethod:   "Credit Card",
		OrderDate:       now,
		DeliveryDate:    now.Add(72 * time.Hour),
		Status:          models.StatusConfirmed,
		Subtotal:        decimal.NewFromFloat(25.00),
		Tax:             decimal.NewFromFloat(2.50),
		GrandTotal:      decimal.NewFromFloat(27.50),
		Items: []models.OrderItem{
			{ProductName: "Product A", Price: decimal.NewFromFloat(10.00), Quantity: 2, Image: "a.jpg"},
			{ProductName: "Product B", Price: decimal.NewFromFloat(5.00), Quantity: 1, Image: "b.png"},
		},
	}
}

// forEachRepository runs the given contract test against both
// OrderRepository implementations: the GORM one on in-memory SQLite and
// the in-memory mock. Their observable behavior must be identical.
func forEachRepository(t *testing.T, test func(t *testing.T, repo repositories.OrderRepository)) {
	t.Run("gorm", func(t *testing.T) {
		test(t, repositories.NewGORMOrderRepository(openTestDB(t)))
	})
	t.Run("mock", func(t *testing.T) {
		test(t, repositories.NewMockOrderRepository())
	})
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.OrderRepository) {
		order := sampleOrder("user-1")
		assert.NoError(t, repo.Create(order))
		assert.NotEmpty(t, order.ID)
		for _, item := range order.Items {
			assert.NotEmpty(t, item.ID)
			assert.Equal(t, order.ID, item.OrderID)
		}

		fetched, err := repo.GetByID(order.ID)
		assert.NoError(t, err)
		assert.Equal(t, order.ID, fetched.ID)
		assert.Len(t, fetched.Items, 2)
		assert.True(t, fetched.GrandTotal.Equal(decimal.NewFromFloat(27.50)))
		assert.Equal(t, models.StatusConfirmed, fetched.Status)
	})
}

func TestOrderRepository_GetByIDNotFound(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.OrderRepository) {
		_, err := repo.GetByID("no-such-order")
		assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	})
}

func TestOrderRepository_GetAll(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.OrderRepository) {
		assert.NoError(t, repo.Create(sampleOrder("user-1")))
		assert.NoError(t, repo.Create(sampleOrder("user-2")))

		orders, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		for _, order := range orders {
			assert.Len(t, order.Items, 2)
		}
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.OrderRepository) {
		order := sampleOrder("user-1")
		assert.NoError(t, repo.Create(order))

		assert.NoError(t, repo.UpdateStatus(order.ID, models.StatusShipped))
		fetched, err := repo.GetByID(order.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusShipped, fetched.Status)

		err = repo.UpdateStatus("no-such-order", models.StatusShipped)
		assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	})
}

func TestOrderRepository_Delete(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.OrderRepository) {
		order := sampleOrder("user-1")
		assert.NoError(t, repo.Create(order))

		assert.NoError(t, repo.Delete(order.ID))

		_, err := repo.GetByID(order.ID)
		assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

		err = repo.Delete(order.ID)
		assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	})
}

func TestGORMOrderRepository_DeleteCascadesItems(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	order := sampleOrder("user-1")
	assert.NoError(t, repo.Create(order))
	assert.NoError(t, repo.Delete(order.ID))

	var itemCount int64
	assert.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "item snapshots must be deleted with their order")
}
