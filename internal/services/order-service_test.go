package services

import (
	"testing"

	"github.com/drodriguezm/pizzeria-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Order{}, &models.PizzaLine{})
	require.NoError(t, err)

	return db
}

func anaRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName: "Ana",
		Address:      "Calle 1",
		Phone:        "555",
		PurchaseDate: "2024-01-01 12:00:00",
		Pizzas: []models.PizzaSpec{
			{Size: "M", Ingredients: "queso", Count: 1, Subtotal: 10.0},
			{Size: "G", Ingredients: "peperoni", Count: 2, Subtotal: 24.0},
		},
	}
}

func TestCreateOrderInsertsAllLines(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Len(t, order.Pizzas, 2)

	rows, err := service.GetOrdersByCustomer("Ana")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, order.ID, row.OrderID)
		assert.Equal(t, "Ana", row.CustomerName)
		assert.Equal(t, "Calle 1", row.Address)
		assert.Equal(t, "555", row.Phone)
		assert.Equal(t, "2024-01-01 12:00:00", row.PurchaseDate)
	}
	assert.Equal(t, "M", rows[0].Size)
	assert.Equal(t, "G", rows[1].Size)
}

func TestCreateOrderRejectsInvalidPurchaseDate(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	req := anaRequest()
	req.PurchaseDate = "01/01/2024"

	_, err := service.CreateOrder(req)
	assert.ErrorIs(t, err, ErrInvalidPurchaseDate)

	rows, err := service.GetAllOrders()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetAllOrdersAscendingByOrderID(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	first, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	second := anaRequest()
	second.CustomerName = "Luis"
	luis, err := service.CreateOrder(second)
	require.NoError(t, err)
	require.Greater(t, luis.ID, first.ID)

	rows, err := service.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i].OrderID, rows[i-1].OrderID)
	}
}

func TestGetOrdersByCustomerUnknownIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	rows, err := service.GetOrdersByCustomer("NoOne")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetPizzasByOrderID(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	pizzas, err := service.GetPizzasByOrderID(order.ID)
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "M", pizzas[0].Size)
	assert.Equal(t, "queso", pizzas[0].Ingredients)
	assert.Equal(t, 1, pizzas[0].Count)
	assert.InDelta(t, 10.0, pizzas[0].Subtotal, 0.001)
}

func TestGetPizzasByOrderIDUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.GetPizzasByOrderID(999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAddPizzaAppendsToOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	line, err := service.AddPizza(order.ID, models.PizzaSpec{
		Size:        "CH",
		Ingredients: "jamón",
		Count:       1,
		Subtotal:    7.5,
	})
	require.NoError(t, err)
	assert.NotZero(t, line.ID)
	assert.Equal(t, order.ID, line.OrderID)

	pizzas, err := service.GetPizzasByOrderID(order.ID)
	require.NoError(t, err)
	assert.Len(t, pizzas, 3)

	// The added line shares the order's customer fields in the flattened view
	rows, err := service.GetOrdersByCustomer("Ana")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestAddPizzaUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.AddPizza(42, models.PizzaSpec{Size: "M", Ingredients: "queso"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeletePizzaRemovesSingleLine(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)
	require.Len(t, order.Pizzas, 2)

	err = service.DeletePizza(order.ID, order.Pizzas[0].ID)
	require.NoError(t, err)

	pizzas, err := service.GetPizzasByOrderID(order.ID)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "G", pizzas[0].Size)
}

func TestDeletePizzaNoMatch(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	// Wrong pizza id within an existing order
	err = service.DeletePizza(order.ID, 9999)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	// Right pizza id under the wrong order
	err = service.DeletePizza(order.ID+1, order.Pizzas[0].ID)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestSalesByDateSumsMatchingPrefix(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	other := anaRequest()
	other.CustomerName = "Luis"
	other.PurchaseDate = "2024-01-02 09:00:00"
	other.Pizzas = []models.PizzaSpec{{Size: "M", Ingredients: "queso", Count: 1, Subtotal: 5.0}}
	_, err = service.CreateOrder(other)
	require.NoError(t, err)

	total, err := service.SalesByDate("2024-01-01")
	require.NoError(t, err)
	assert.InDelta(t, 34.0, total, 0.001)

	total, err = service.SalesByDate("2024-01-02")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, total, 0.001)
}

func TestSalesByDateNoRows(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.SalesByDate("2099-01-01")
	assert.ErrorIs(t, err, ErrNoSales)
}

func TestCustomerTotal(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.CreateOrder(anaRequest())
	require.NoError(t, err)

	total, err := service.CustomerTotal("Ana")
	require.NoError(t, err)
	assert.InDelta(t, 34.0, total, 0.001)
}

func TestCustomerTotalUnknownCustomerIsZero(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	total, err := service.CustomerTotal("NoOne")
	require.NoError(t, err)
	assert.Zero(t, total)
}
