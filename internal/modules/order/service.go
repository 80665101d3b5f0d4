package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
)

// Gateway is the slice of the provider client this module needs.
type Gateway interface {
	PutOrder(ctx context.Context, externalStoreID, externalPOSID string, order mercadopago.InstoreOrder) error
	SearchPayments(ctx context.Context, externalReference string) (*mercadopago.PaymentSearchResult, error)
}

// Service defines the fixed-QR order operations.
type Service interface {
	// CreateOrder pushes an amount onto the fixed QR and returns the generated
	// external reference. Repeated calls overwrite the pending amount.
	CreateOrder(ctx context.Context, amount float64) (string, error)

	// CheckStatus looks up the payment matching an external reference.
	CheckStatus(ctx context.Context, orderID string) (*StatusResponse, error)
}

type service struct {
	gateway         Gateway
	externalStoreID string
	externalPOSID   string
}

// NewService creates the order service bound to one store/POS pair.
func NewService(gateway Gateway, externalStoreID, externalPOSID string) Service {
	return &service{gateway: gateway, externalStoreID: externalStoreID, externalPOSID: externalPOSID}
}

func (s *service) CreateOrder(ctx context.Context, amount float64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be greater than 0")
	}

	ref := uuid.NewString()
	order := mercadopago.InstoreOrder{
		ExternalReference: ref,
		Title:             orderTitle,
		Description:       orderTitle,
		TotalAmount:       amount,
		Items: []mercadopago.OrderItem{
			{
				Title:       itemTitle,
				UnitPrice:   amount,
				Quantity:    1,
				UnitMeasure: "unit",
				TotalAmount: amount,
			},
		},
	}

	if err := s.gateway.PutOrder(ctx, s.externalStoreID, s.externalPOSID, order); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *service) CheckStatus(ctx context.Context, orderID string) (*StatusResponse, error) {
	result, err := s.gateway.SearchPayments(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if len(result.Results) == 0 {
		// No payment yet: the normal state while the customer hasn't scanned.
		return &StatusResponse{
			Status:  "pending",
			Message: "Orden creada, esperando pago",
		}, nil
	}

	// First entry wins; the provider's result order is passed through as-is.
	payment := result.Results[0]
	return &StatusResponse{
		Status:      payment.Status(),
		PaymentData: payment,
	}, nil
}
