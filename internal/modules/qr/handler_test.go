package qr_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/qr"
)

func newRouter(store qr.SetupStore) *chi.Mux {
	router := chi.NewRouter()
	qr.NewHandler(store).RegisterRoutes(router)
	return router
}

func TestQRInfoNotConfigured(t *testing.T) {
	store := qr.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	router := newRouter(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/qr-info", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No se encontró configuración de caja. Corre el comando de setup primero."}`, rec.Body.String())
}

func TestQRInfoReturnsStoredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mp_setup_result.json")
	store := qr.NewFileStore(path)
	require.NoError(t, store.Save(&mercadopago.POS{
		ID:         "55555",
		Name:       "Caja 1",
		ExternalID: "POS002",
		QR:         mercadopago.QR{Image: "https://www.mercadopago.com/instore/merchant/qr/55555/image.png"},
	}))

	router := newRouter(store)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/qr-info", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"qr_image":"https://www.mercadopago.com/instore/merchant/qr/55555/image.png","external_pos_id":"POS002"}`, rec.Body.String())
}

func TestFileStoreLoadsProviderShapedFile(t *testing.T) {
	// The setup command persists the provider's POS response; make sure a file
	// in that exact shape round-trips.
	path := filepath.Join(t.TempDir(), "mp_setup_result.json")
	raw := `{
    "id": 55555,
    "name": "Caja 1",
    "external_id": "POS002",
    "qr": {
        "image": "https://www.mercadopago.com/instore/merchant/qr/55555/image.png"
    }
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	pos, err := qr.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "POS002", pos.ExternalID)
	assert.Equal(t, "https://www.mercadopago.com/instore/merchant/qr/55555/image.png", pos.QR.Image)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mp_setup_result.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := qr.NewFileStore(path).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, qr.ErrNotConfigured)
}
