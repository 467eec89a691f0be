package services

import (
	"errors"
	"time"

	"github.com/drodriguezm/pizzeria-api/internal/models"
	"gorm.io/gorm"
)

// Sentinel errors the controller layer maps to HTTP statuses. Storage failures
// are returned as-is and map to an internal error uniformly.
var (
	// ErrOrderNotFound indicates the referenced order id does not exist
	ErrOrderNotFound = errors.New("order not found")
	// ErrPizzaNotFound indicates no pizza line matched the order/pizza id pair
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrNoSales indicates no pizza line matched the requested date prefix
	ErrNoSales = errors.New("no sales for date")
	// ErrInvalidPurchaseDate indicates fecha_compra is not "YYYY-MM-DD HH:MM:SS"
	ErrInvalidPurchaseDate = errors.New("invalid purchase date format")
)

// OrderService provides methods to interact with the orders database
type OrderService interface {
	// GetAllOrders retrieves every pizza line flattened with its order's
	// customer fields, in ascending order id
	GetAllOrders() ([]models.OrderRow, error)
	// GetOrdersByCustomer retrieves a customer's flattened rows by exact name
	GetOrdersByCustomer(name string) ([]models.OrderRow, error)
	// CreateOrder inserts the order header and all its pizza lines atomically
	CreateOrder(req models.CreateOrderRequest) (models.Order, error)
	// GetPizzasByOrderID retrieves the pizza lines of one order
	GetPizzasByOrderID(orderID uint) ([]models.PizzaView, error)
	// AddPizza appends one pizza line to an existing order
	AddPizza(orderID uint, spec models.PizzaSpec) (models.PizzaLine, error)
	// DeletePizza removes the pizza line with the given id from the given
	// order, failing with ErrPizzaNotFound when nothing matched
	DeletePizza(orderID, pizzaID uint) error
	// SalesByDate sums subtotals across all pizza lines of orders whose
	// purchase date starts with the given date string
	SalesByDate(date string) (float64, error)
	// CustomerTotal sums a customer's subtotals, zero when they have no orders
	CustomerTotal(name string) (float64, error)
}

// orderService is the implementation of the OrderService interface
type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// flattenedRows is the shared SELECT for the listing endpoints: one row per
// pizza line joined with its order header.
func (s *orderService) flattenedRows() *gorm.DB {
	return s.db.Table("pedidos").
		Select("pedidos.id AS pedido_id, pedidos.nombre_completo, pedidos.direccion, pedidos.telefono, pedidos.fecha_compra, pizzas.tamanio, pizzas.ingredientes, pizzas.num_pizzas, pizzas.subtotal").
		Joins("JOIN pizzas ON pizzas.pedido_id = pedidos.id")
}

func (s *orderService) GetAllOrders() ([]models.OrderRow, error) {
	var rows []models.OrderRow
	err := s.flattenedRows().
		Order("pedidos.id ASC, pizzas.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *orderService) GetOrdersByCustomer(name string) ([]models.OrderRow, error) {
	var rows []models.OrderRow
	err := s.flattenedRows().
		Where("pedidos.nombre_completo = ?", name).
		Order("pedidos.id ASC, pizzas.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *orderService) CreateOrder(req models.CreateOrderRequest) (models.Order, error) {
	if _, err := time.Parse(models.PurchaseDateLayout, req.PurchaseDate); err != nil {
		return models.Order{}, ErrInvalidPurchaseDate
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		PurchaseDate: req.PurchaseDate,
	}
	for _, spec := range req.Pizzas {
		order.Pizzas = append(order.Pizzas, models.PizzaLine{
			Size:        spec.Size,
			Ingredients: spec.Ingredients,
			Count:       spec.Count,
			Subtotal:    spec.Subtotal,
		})
	}

	// Header and lines commit together or not at all.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) GetPizzasByOrderID(orderID uint) ([]models.PizzaView, error) {
	if err := s.requireOrder(orderID); err != nil {
		return nil, err
	}

	var pizzas []models.PizzaView
	err := s.db.Table("pizzas").
		Select("tamanio, ingredientes, num_pizzas, subtotal").
		Where("pedido_id = ?", orderID).
		Order("id ASC").
		Scan(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *orderService) AddPizza(orderID uint, spec models.PizzaSpec) (models.PizzaLine, error) {
	if err := s.requireOrder(orderID); err != nil {
		return models.PizzaLine{}, err
	}

	line := models.PizzaLine{
		OrderID:     orderID,
		Size:        spec.Size,
		Ingredients: spec.Ingredients,
		Count:       spec.Count,
		Subtotal:    spec.Subtotal,
	}
	if err := s.db.Create(&line).Error; err != nil {
		return models.PizzaLine{}, err
	}
	return line, nil
}

func (s *orderService) DeletePizza(orderID, pizzaID uint) error {
	res := s.db.Where("pedido_id = ? AND id = ?", orderID, pizzaID).Delete(&models.PizzaLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPizzaNotFound
	}
	return nil
}

func (s *orderService) SalesByDate(date string) (float64, error) {
	var agg struct {
		Total float64
		Lines int64
	}
	err := s.db.Table("pizzas").
		Select("COALESCE(SUM(pizzas.subtotal), 0) AS total, COUNT(pizzas.id) AS lines").
		Joins("JOIN pedidos ON pedidos.id = pizzas.pedido_id").
		Where("pedidos.fecha_compra LIKE ?", date+"%").
		Scan(&agg).Error
	if err != nil {
		return 0, err
	}
	if agg.Lines == 0 {
		return 0, ErrNoSales
	}
	return agg.Total, nil
}

func (s *orderService) CustomerTotal(name string) (float64, error) {
	// A customer with no orders totals zero, it is not a lookup failure.
	var total float64
	err := s.db.Table("pizzas").
		Select("COALESCE(SUM(pizzas.subtotal), 0)").
		Joins("JOIN pedidos ON pedidos.id = pizzas.pedido_id").
		Where("pedidos.nombre_completo = ?", name).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// requireOrder translates gorm's not-found into the service sentinel so
// handlers never see storage-layer errors.
func (s *orderService) requireOrder(orderID uint) error {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
