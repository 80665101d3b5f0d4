package mercadopago

import "encoding/json"

// ── In-store QR order ─────────────────────────────────────────────────────────

// OrderItem is a single line of an in-store order. The fixed-QR flow always
// sends exactly one item mirroring the total.
type OrderItem struct {
	Title       string  `json:"title"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	UnitMeasure string  `json:"unit_measure"`
	TotalAmount float64 `json:"total_amount"`
}

// InstoreOrder is the payload PUT onto a fixed QR. Sending it replaces
// whatever amount the QR was requesting before.
type InstoreOrder struct {
	ExternalReference string      `json:"external_reference"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	TotalAmount       float64     `json:"total_amount"`
	Items             []OrderItem `json:"items"`
}

// ── Payment search ────────────────────────────────────────────────────────────

// Payment is a provider-owned payment record. Mercado Pago returns dozens of
// fields here; callers relay the whole object, so it stays an open map with
// accessors for the fields this service reads.
type Payment map[string]interface{}

// Status returns the payment's status string, or "unknown" when absent.
func (p Payment) Status() string {
	if s, ok := p["status"].(string); ok && s != "" {
		return s
	}
	return "unknown"
}

// PaymentSearchResult is the response of GET /v1/payments/search.
type PaymentSearchResult struct {
	Results []Payment `json:"results"`
}

// ── Store / POS provisioning ──────────────────────────────────────────────────

// StoreLocation is the physical address of a store.
type StoreLocation struct {
	StreetNumber string  `json:"street_number"`
	StreetName   string  `json:"street_name"`
	CityName     string  `json:"city_name"`
	StateName    string  `json:"state_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// StoreRequest is the payload for creating a store under the collector user.
type StoreRequest struct {
	Name       string        `json:"name"`
	ExternalID string        `json:"external_id"`
	Location   StoreLocation `json:"location"`
}

// Store is the provider's store record.
type Store struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	ExternalID string      `json:"external_id"`
}

// StoreSearchResult is the response of GET /users/{user_id}/stores/search.
type StoreSearchResult struct {
	Results []Store `json:"results"`
}

// POSRequest is the payload for creating a point of sale.
type POSRequest struct {
	Name            string `json:"name"`
	FixedAmount     bool   `json:"fixed_amount"`
	ExternalStoreID string `json:"external_store_id"`
	ExternalID      string `json:"external_id"`
	Category        int    `json:"category"`
}

// QR holds the image URLs the provider generates for a POS.
type QR struct {
	Image            string `json:"image"`
	TemplateDocument string `json:"template_document,omitempty"`
	TemplateImage    string `json:"template_image,omitempty"`
}

// POS is the provider's point-of-sale record. Its QR image URL is the one
// piece of provider state this system persists locally.
type POS struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	ExternalID string      `json:"external_id"`
	StoreID    json.Number `json:"store_id,omitempty"`
	QR         QR          `json:"qr"`
}
