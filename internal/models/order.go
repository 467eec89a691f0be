package models

// PurchaseDateLayout is the wire format for fecha_compra, kept identical to the
// format the frontend already sends and displays.
const PurchaseDateLayout = "2006-01-02 15:04:05"

// Order represents one purchase event. It owns its pizza lines: customer and
// delivery data live here exactly once, and every line references the order id.
type Order struct {
	ID           uint        `gorm:"primaryKey;column:id" json:"pedido_id"`
	CustomerName string      `gorm:"column:nombre_completo;not null" json:"nombre_completo"`
	Address      string      `gorm:"column:direccion;not null" json:"direccion"`
	Phone        string      `gorm:"column:telefono;not null" json:"telefono"`
	PurchaseDate string      `gorm:"column:fecha_compra;not null" json:"fecha_compra"`
	Pizzas       []PizzaLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"pizzas,omitempty"`
}

// TableName keeps the table the existing MySQL schema and frontend expect
func (Order) TableName() string {
	return "pedidos"
}

// PizzaLine is one pizza within an order: its size, ingredients, how many of it
// were ordered and the money attributed to it. Subtotal is caller-supplied and
// never recomputed server-side.
type PizzaLine struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"pizza_id"`
	OrderID     uint    `gorm:"column:pedido_id;index;not null" json:"-"`
	Size        string  `gorm:"column:tamanio;not null" json:"tamanio"`
	Ingredients string  `gorm:"column:ingredientes;not null" json:"ingredientes"`
	Count       int     `gorm:"column:num_pizzas;not null" json:"num_pizzas"`
	Subtotal    float64 `gorm:"column:subtotal;not null" json:"subtotal"`
}

func (PizzaLine) TableName() string {
	return "pizzas"
}

// OrderRow is the flattened listing shape: one row per pizza line carrying the
// owning order's customer fields, exactly as the original single-table API
// emitted it.
type OrderRow struct {
	OrderID      uint    `gorm:"column:pedido_id" json:"pedido_id"`
	CustomerName string  `gorm:"column:nombre_completo" json:"nombre_completo"`
	Address      string  `gorm:"column:direccion" json:"direccion"`
	Phone        string  `gorm:"column:telefono" json:"telefono"`
	PurchaseDate string  `gorm:"column:fecha_compra" json:"fecha_compra"`
	Size         string  `gorm:"column:tamanio" json:"tamanio"`
	Ingredients  string  `gorm:"column:ingredientes" json:"ingredientes"`
	Count        int     `gorm:"column:num_pizzas" json:"num_pizzas"`
	Subtotal     float64 `gorm:"column:subtotal" json:"subtotal"`
}

// PizzaSpec is the write payload for a single pizza line.
type PizzaSpec struct {
	Size        string  `json:"tamanio" binding:"required"`
	Ingredients string  `json:"ingredientes" binding:"required"`
	Count       int     `json:"num_pizzas" binding:"gte=0"`
	Subtotal    float64 `json:"subtotal" binding:"gte=0"`
}

// CreateOrderRequest is the POST /pedidos payload: shared customer fields plus a
// non-empty collection of pizza specs.
type CreateOrderRequest struct {
	CustomerName string      `json:"nombre_completo" binding:"required"`
	Address      string      `json:"direccion" binding:"required"`
	Phone        string      `json:"telefono" binding:"required"`
	PurchaseDate string      `json:"fecha_compra" binding:"required"`
	Pizzas       []PizzaSpec `json:"pizzas" binding:"required,min=1,dive"`
}

// PizzaView is the projection returned by GET /pizzas/{pedido_id}.
type PizzaView struct {
	Size        string  `gorm:"column:tamanio" json:"tamanio"`
	Ingredients string  `gorm:"column:ingredientes" json:"ingredientes"`
	Count       int     `gorm:"column:num_pizzas" json:"num_pizzas"`
	Subtotal    float64 `gorm:"column:subtotal" json:"subtotal"`
}
