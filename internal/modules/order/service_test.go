package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/order"
)

// mockGateway implements order.Gateway for testing.
type mockGateway struct {
	putOrderFunc func(ctx context.Context, storeID, posID string, o mercadopago.InstoreOrder) error
	searchFunc   func(ctx context.Context, ref string) (*mercadopago.PaymentSearchResult, error)
}

func (m *mockGateway) PutOrder(ctx context.Context, storeID, posID string, o mercadopago.InstoreOrder) error {
	if m.putOrderFunc != nil {
		return m.putOrderFunc(ctx, storeID, posID, o)
	}
	return nil
}

func (m *mockGateway) SearchPayments(ctx context.Context, ref string) (*mercadopago.PaymentSearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, ref)
	}
	return &mercadopago.PaymentSearchResult{}, nil
}

func TestCreateOrderBuildsSingleItemMirroringTotal(t *testing.T) {
	var got mercadopago.InstoreOrder
	var gotStore, gotPOS string
	gw := &mockGateway{putOrderFunc: func(ctx context.Context, storeID, posID string, o mercadopago.InstoreOrder) error {
		gotStore, gotPOS, got = storeID, posID, o
		return nil
	}}

	service := order.NewService(gw, "ST001", "POS002")
	ref, err := service.CreateOrder(context.Background(), 150.50)
	require.NoError(t, err)

	assert.Equal(t, "ST001", gotStore)
	assert.Equal(t, "POS002", gotPOS)
	assert.Equal(t, ref, got.ExternalReference)
	assert.Equal(t, 150.50, got.TotalAmount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 150.50, got.Items[0].UnitPrice)
	assert.Equal(t, 150.50, got.Items[0].TotalAmount)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "unit", got.Items[0].UnitMeasure)
}

func TestCreateOrderGeneratesUniqueReferences(t *testing.T) {
	service := order.NewService(&mockGateway{}, "ST001", "POS002")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref, err := service.CreateOrder(context.Background(), 10)
		require.NoError(t, err)

		_, err = uuid.Parse(ref)
		require.NoError(t, err, "external reference must be a valid UUID")
		assert.False(t, seen[ref], "external reference repeated across calls")
		seen[ref] = true
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	called := false
	gw := &mockGateway{putOrderFunc: func(ctx context.Context, storeID, posID string, o mercadopago.InstoreOrder) error {
		called = true
		return nil
	}}
	service := order.NewService(gw, "ST001", "POS002")

	_, err := service.CreateOrder(context.Background(), 0)
	assert.Error(t, err)
	_, err = service.CreateOrder(context.Background(), -5)
	assert.Error(t, err)
	assert.False(t, called, "gateway must not be called for invalid amounts")
}

func TestCreateOrderPropagatesGatewayError(t *testing.T) {
	gwErr := &mercadopago.APIError{StatusCode: 403, Body: []byte(`{"message":"forbidden"}`)}
	gw := &mockGateway{putOrderFunc: func(ctx context.Context, storeID, posID string, o mercadopago.InstoreOrder) error {
		return gwErr
	}}
	service := order.NewService(gw, "ST001", "POS002")

	_, err := service.CreateOrder(context.Background(), 10)
	var apiErr *mercadopago.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestCheckStatusPendingWhenNoPayments(t *testing.T) {
	gw := &mockGateway{searchFunc: func(ctx context.Context, ref string) (*mercadopago.PaymentSearchResult, error) {
		return &mercadopago.PaymentSearchResult{}, nil
	}}
	service := order.NewService(gw, "ST001", "POS002")

	status, err := service.CheckStatus(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "pending", status.Status)
	assert.Equal(t, "Orden creada, esperando pago", status.Message)
	assert.Nil(t, status.PaymentData)
}

func TestCheckStatusReturnsFirstPayment(t *testing.T) {
	first := mercadopago.Payment{"id": float64(1), "status": "approved"}
	second := mercadopago.Payment{"id": float64(2), "status": "rejected"}
	gw := &mockGateway{searchFunc: func(ctx context.Context, ref string) (*mercadopago.PaymentSearchResult, error) {
		return &mercadopago.PaymentSearchResult{Results: []mercadopago.Payment{first, second}}, nil
	}}
	service := order.NewService(gw, "ST001", "POS002")

	status, err := service.CheckStatus(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "approved", status.Status)
	assert.Equal(t, first, status.PaymentData)
	assert.Empty(t, status.Message)
}

func TestCheckStatusPropagatesSearchError(t *testing.T) {
	gw := &mockGateway{searchFunc: func(ctx context.Context, ref string) (*mercadopago.PaymentSearchResult, error) {
		return nil, errors.New("connection refused")
	}}
	service := order.NewService(gw, "ST001", "POS002")

	_, err := service.CheckStatus(context.Background(), "abc")
	assert.Error(t, err)
}
