package order

import "github.com/tomasferreyra/verduqr-backend/internal/mercadopago"

// Fixed texts sent to the provider with every order. The shop sells loose
// produce, so every charge is a single generic line item.
const (
	orderTitle = "Venta de Verduleria"
	itemTitle  = "Productos varios"
)

// CreateOrderRequest is the payload for loading an amount onto the fixed QR.
// Amount is a pointer so an absent field is distinguishable from zero.
type CreateOrderRequest struct {
	Amount *float64 `json:"amount"`
}

// CreateOrderResponse is returned once the provider accepted the order.
// ExternalReference is the caller's handle for polling payment status.
type CreateOrderResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	ExternalReference string `json:"external_reference"`
}

// StatusResponse is the answer of the check-order endpoint. While no payment
// matches the reference yet, Status is "pending" and Message explains it;
// once paid, Status carries the provider's value and PaymentData the full
// payment record.
type StatusResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message,omitempty"`
	PaymentData mercadopago.Payment `json:"payment_data,omitempty"`
}
