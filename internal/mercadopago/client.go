package mercadopago

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from Mercado Pago. It keeps the provider's
// status code and raw body so endpoints can relay them verbatim.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: status %d: %s", e.StatusCode, string(e.Body))
}

// Details returns the provider's error body as JSON, or a placeholder when
// the provider answered with an empty body.
func (e *APIError) Details() interface{} {
	if len(e.Body) == 0 {
		return "Respuesta vacía"
	}
	if !json.Valid(e.Body) {
		return string(e.Body)
	}
	return json.RawMessage(e.Body)
}

// Client is a thin typed client over the Mercado Pago endpoints this system
// consumes. All calls carry the collector's bearer token.
type Client struct {
	http   *resty.Client
	userID string
}

// NewClient builds a Client for the given collector user. baseURL is
// overridable for tests; production callers pass config.DefaultBaseURL.
func NewClient(baseURL, accessToken, userID string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: rc, userID: userID}
}

// PutOrder replaces the pending order on a fixed QR with the given one.
// QR Fijo v2 uses PUT: the QR requests this amount from the next scan,
// overwriting whatever was loaded before.
func (c *Client) PutOrder(ctx context.Context, externalStoreID, externalPOSID string, order InstoreOrder) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(order).
		Put(fmt.Sprintf("/instore/qr/seller/collectors/%s/stores/%s/pos/%s/orders",
			c.userID, externalStoreID, externalPOSID))
	if err != nil {
		return fmt.Errorf("failed to call order endpoint: %w", err)
	}
	switch resp.StatusCode() {
	case 200, 201, 204:
		return nil
	default:
		return &APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}
}

// SearchPayments looks up payments matching an order's external reference.
// Zero results simply means the order has not been paid yet.
func (c *Client) SearchPayments(ctx context.Context, externalReference string) (*PaymentSearchResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("external_reference", externalReference).
		Get("/v1/payments/search")
	if err != nil {
		return nil, fmt.Errorf("failed to call payments search: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var result PaymentSearchResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode payments search response: %w", err)
	}
	return &result, nil
}

// CreateStore registers a store under the collector user.
func (c *Client) CreateStore(ctx context.Context, req StoreRequest) (*Store, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/users/%s/stores", c.userID))
	if err != nil {
		return nil, fmt.Errorf("failed to call store creation: %w", err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var store Store
	if err := json.Unmarshal(resp.Body(), &store); err != nil {
		return nil, fmt.Errorf("failed to decode store creation response: %w", err)
	}
	return &store, nil
}

// FindStoreByExternalID resolves an already-registered store to its real
// provider id. Used when creation reports the store exists.
func (c *Client) FindStoreByExternalID(ctx context.Context, externalID string) (*Store, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("external_id", externalID).
		Get(fmt.Sprintf("/users/%s/stores/search", c.userID))
	if err != nil {
		return nil, fmt.Errorf("failed to call store search: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var result StoreSearchResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode store search response: %w", err)
	}
	if len(result.Results) == 0 {
		return nil, fmt.Errorf("no store found with external_id %s", externalID)
	}
	return &result.Results[0], nil
}

// CreatePOS registers a point of sale. The response carries the QR image URL
// that provisioning persists for the qr-info endpoint.
func (c *Client) CreatePOS(ctx context.Context, req POSRequest) (*POS, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/pos")
	if err != nil {
		return nil, fmt.Errorf("failed to call pos creation: %w", err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var pos POS
	if err := json.Unmarshal(resp.Body(), &pos); err != nil {
		return nil, fmt.Errorf("failed to decode pos creation response: %w", err)
	}
	return &pos, nil
}
