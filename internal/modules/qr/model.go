package qr

// InfoResponse is what the POS app renders to show the physical QR.
type InfoResponse struct {
	QRImage       string `json:"qr_image"`
	ExternalPOSID string `json:"external_pos_id"`
}
