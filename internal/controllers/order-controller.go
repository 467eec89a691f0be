package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/drodriguezm/pizzeria-api/internal/models"
	"github.com/drodriguezm/pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderController handles HTTP requests related to orders and their pizza lines
type OrderController interface {
	// GetAllOrders retrieves all orders
	GetAllOrders(c *gin.Context)
	// GetOrdersByCustomer retrieves one customer's orders
	GetOrdersByCustomer(c *gin.Context)
	// CreateOrder registers a new order with one or more pizzas
	CreateOrder(c *gin.Context)
	// GetPizzasByOrderID retrieves the pizzas of one order
	GetPizzasByOrderID(c *gin.Context)
	// AddPizza appends a pizza to an existing order
	AddPizza(c *gin.Context)
	// DeletePizza removes one pizza line from an order
	DeletePizza(c *gin.Context)
	// SalesByDate sums sales for a date prefix
	SalesByDate(c *gin.Context)
	// CustomerTotal sums a customer's subtotals
	CustomerTotal(c *gin.Context)
	// Ping is the connectivity probe
	Ping(c *gin.Context)
}

type controller struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *controller {
	return &controller{service: service}
}

// GetAllOrders godoc
// @Summary List all orders
// @Description Get every pizza line flattened with its order's customer fields, ascending by order id
// @Tags pedidos
// @Produce json
// @Success 200 {object} models.OrderListResponse
// @Failure 500 {object} models.APIResponse
// @Router /pedidos [get]
func (c *controller) GetAllOrders(ctx *gin.Context) {
	rows, err := c.service.GetAllOrders()
	if err != nil {
		log.WithError(err).Error("Failed to list orders")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al obtener los pedidos", false))
		return
	}
	ctx.JSON(http.StatusOK, models.OrderListResponse{
		Orders:  rows,
		Message: "Lista de Pedidos",
		Success: true,
	})
}

// GetOrdersByCustomer godoc
// @Summary List a customer's orders
// @Description Get all pizza lines for orders placed by the given customer, matched by exact name
// @Tags pedidos
// @Produce json
// @Param nombre_completo path string true "Customer full name"
// @Success 200 {object} models.OrderListResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /pedidos/{nombre_completo} [get]
func (c *controller) GetOrdersByCustomer(ctx *gin.Context) {
	name := ctx.Param("nombre_completo")

	rows, err := c.service.GetOrdersByCustomer(name)
	if err != nil {
		log.WithError(err).WithField("customer", name).Error("Failed to list customer orders")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al obtener pedidos", false))
		return
	}
	if len(rows) == 0 {
		ctx.JSON(http.StatusNotFound, models.NewAPIResponse("No se encontraron pedidos para este cliente", false))
		return
	}
	ctx.JSON(http.StatusOK, models.OrderListResponse{
		Orders:  rows,
		Message: "Lista de pedidos del cliente",
		Success: true,
	})
}

// CreateOrder godoc
// @Summary Register an order
// @Description Create an order with its customer fields and at least one pizza; all rows commit together
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedido body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /pedidos [post]
func (c *controller) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIResponse("Error al registrar el pedido: datos incompletos", false))
		return
	}

	order, err := c.service.CreateOrder(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPurchaseDate) {
			ctx.JSON(http.StatusBadRequest, models.NewAPIResponse("Error al registrar el pedido: fecha_compra invalida", false))
			return
		}
		log.WithError(err).Error("Failed to create order")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al registrar el pedido", false))
		return
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"pizzas":   len(order.Pizzas),
	}).Info("Order registered")
	ctx.JSON(http.StatusCreated, models.NewAPIResponse("Pedido registrado con éxito", true))
}

// GetPizzasByOrderID godoc
// @Summary List pizzas of an order
// @Description Get the pizza lines of one order, projected to size, ingredients, count and subtotal
// @Tags pizzas
// @Produce json
// @Param pedido_id path int true "Order ID"
// @Success 200 {object} models.PizzaListResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /pizzas/{pedido_id} [get]
func (c *controller) GetPizzasByOrderID(ctx *gin.Context) {
	orderID, ok := c.uintParam(ctx, "pedido_id")
	if !ok {
		return
	}

	pizzas, err := c.service.GetPizzasByOrderID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIResponse("No se encontraron pizzas para este pedido", false))
			return
		}
		log.WithError(err).WithField("order_id", orderID).Error("Failed to list pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al obtener las pizzas", false))
		return
	}
	ctx.JSON(http.StatusOK, models.PizzaListResponse{
		Pizzas:  pizzas,
		Message: "Lista de pizzas del pedido",
		Success: true,
	})
}

// AddPizza godoc
// @Summary Add a pizza to an order
// @Description Append one pizza line to an existing order; customer fields are inherited from the order
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pedido_id path int true "Order ID"
// @Param pizza body models.PizzaSpec true "Pizza payload"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /agregar_pizza/{pedido_id} [post]
func (c *controller) AddPizza(ctx *gin.Context) {
	orderID, ok := c.uintParam(ctx, "pedido_id")
	if !ok {
		return
	}

	var spec models.PizzaSpec
	if err := ctx.ShouldBindJSON(&spec); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIResponse("Error al agregar la pizza: datos incompletos", false))
		return
	}

	line, err := c.service.AddPizza(orderID, spec)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIResponse("No existe el pedido indicado", false))
			return
		}
		log.WithError(err).WithField("order_id", orderID).Error("Failed to add pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al agregar la pizza", false))
		return
	}

	log.WithFields(log.Fields{
		"order_id": orderID,
		"pizza_id": line.ID,
	}).Info("Pizza added to order")
	ctx.JSON(http.StatusCreated, models.NewAPIResponse("Pizza agregada al pedido con éxito", true))
}

// DeletePizza godoc
// @Summary Delete a pizza line
// @Description Remove the pizza line with the given id from the given order
// @Tags pizzas
// @Produce json
// @Param pedido_id path int true "Order ID"
// @Param pizza_id path int true "Pizza line ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /eliminar_pizza/{pedido_id}/{pizza_id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	orderID, ok := c.uintParam(ctx, "pedido_id")
	if !ok {
		return
	}
	pizzaID, ok := c.uintParam(ctx, "pizza_id")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(orderID, pizzaID); err != nil {
		if errors.Is(err, services.ErrPizzaNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIResponse("No existe la pizza indicada en este pedido", false))
			return
		}
		log.WithError(err).WithFields(log.Fields{
			"order_id": orderID,
			"pizza_id": pizzaID,
		}).Error("Failed to delete pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al eliminar la pizza", false))
		return
	}
	ctx.JSON(http.StatusOK, models.NewAPIResponse("Pizza eliminada con éxito", true))
}

// SalesByDate godoc
// @Summary Sales total for a date
// @Description Sum subtotals of every pizza line whose order's purchase date starts with the given date
// @Tags ventas
// @Produce json
// @Param fecha path string true "Date prefix (YYYY-MM-DD)"
// @Success 200 {object} models.SalesResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /ventas/{fecha} [get]
func (c *controller) SalesByDate(ctx *gin.Context) {
	date := ctx.Param("fecha")

	total, err := c.service.SalesByDate(date)
	if err != nil {
		if errors.Is(err, services.ErrNoSales) {
			ctx.JSON(http.StatusNotFound, models.NewAPIResponse("No se encontraron ventas para esta fecha", false))
			return
		}
		log.WithError(err).WithField("date", date).Error("Failed to sum sales")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al obtener las ventas", false))
		return
	}
	ctx.JSON(http.StatusOK, models.SalesResponse{Sales: total, Success: true})
}

// CustomerTotal godoc
// @Summary Total spent by a customer
// @Description Sum a customer's subtotals across all their orders; zero when they have none
// @Tags ventas
// @Produce json
// @Param nombre_completo path string true "Customer full name"
// @Success 200 {object} models.CustomerTotalResponse
// @Failure 500 {object} models.APIResponse
// @Router /calcular_total/{nombre_completo} [get]
func (c *controller) CustomerTotal(ctx *gin.Context) {
	name := ctx.Param("nombre_completo")

	total, err := c.service.CustomerTotal(name)
	if err != nil {
		log.WithError(err).WithField("customer", name).Error("Failed to sum customer total")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIResponse("Error al calcular el total", false))
		return
	}
	ctx.JSON(http.StatusOK, models.CustomerTotalResponse{
		Total:   total,
		Message: "Total calculado",
		Success: true,
	})
}

// Ping godoc
// @Summary Connectivity probe
// @Description Fixed acknowledgment confirming the service is reachable
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /test [get]
func (c *controller) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Conexión exitosa"})
}

// uintParam parses a numeric path parameter, answering 400 itself on failure.
func (c *controller) uintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIResponse("Identificador inválido: "+name, false))
		return 0, false
	}
	return uint(value), true
}
