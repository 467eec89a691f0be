package models

// APIResponse is the envelope every endpoint answers with: a human-readable
// message and a success flag, matching what the existing frontend parses.
type APIResponse struct {
	Message string `json:"mensaje"`
	Success bool   `json:"exito"`
}

// NewAPIResponse creates an envelope with the given message and success flag
func NewAPIResponse(message string, success bool) APIResponse {
	return APIResponse{Message: message, Success: success}
}

// OrderListResponse wraps a flattened order listing.
type OrderListResponse struct {
	Orders  []OrderRow `json:"pedidos"`
	Message string     `json:"mensaje"`
	Success bool       `json:"exito"`
}

// PizzaListResponse wraps the pizza lines of a single order.
type PizzaListResponse struct {
	Pizzas  []PizzaView `json:"pizzas"`
	Message string      `json:"mensaje"`
	Success bool        `json:"exito"`
}

// SalesResponse carries the date-sales aggregate. The original API omits the
// message field on success, so it is optional here.
type SalesResponse struct {
	Sales   float64 `json:"ventas"`
	Message string  `json:"mensaje,omitempty"`
	Success bool    `json:"exito"`
}

// CustomerTotalResponse carries a customer's subtotal sum. Total defaults to
// zero for customers with no orders.
type CustomerTotalResponse struct {
	Total   float64 `json:"total"`
	Message string  `json:"mensaje"`
	Success bool    `json:"exito"`
}
