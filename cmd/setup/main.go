// Command setup provisions the Mercado Pago side of the system: it registers
// the store and the point of sale, then persists the resulting identifiers
// (QR image URL included) to the setup file the API serves from.
//
// Run it once before starting the API server. Rerunning overwrites the file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tomasferreyra/verduqr-backend/internal/config"
	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/qr"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Usando USER_ID: %s\n", cfg.UserID)

	ctx := context.Background()
	client := mercadopago.NewClient(cfg.BaseURL, cfg.AccessToken, cfg.UserID)

	store, err := ensureStore(ctx, client, cfg.ExternalStoreID)
	if err != nil {
		fmt.Printf("No se pudo crear ni encontrar la sucursal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sucursal lista (id: %s, external_id: %s)\n", store.ID, store.ExternalID)

	pos, err := client.CreatePOS(ctx, mercadopago.POSRequest{
		Name:            "Caja 1",
		FixedAmount:     false,
		ExternalStoreID: cfg.ExternalStoreID,
		ExternalID:      cfg.ExternalPOSID,
		Category:        621102,
	})
	if err != nil {
		fmt.Printf("Error creando caja: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n--- DATOS DE TU CAJA ---")
	fmt.Printf("POS ID (MP): %s\n", pos.ID)
	fmt.Printf("External POS ID: %s\n", pos.ExternalID)
	fmt.Printf("QR URL: %s\n", pos.QR.Image)

	if err := qr.NewFileStore(cfg.SetupFile).Save(pos); err != nil {
		fmt.Printf("No se pudo guardar el resultado del setup: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Resultado guardado en %s\n", cfg.SetupFile)
}

// ensureStore creates the store, and when the provider reports it already
// exists, resolves the real record by external id instead of guessing one.
func ensureStore(ctx context.Context, client *mercadopago.Client, externalID string) (*mercadopago.Store, error) {
	store, err := client.CreateStore(ctx, mercadopago.StoreRequest{
		Name:       "Verduleria Central",
		ExternalID: externalID,
		Location: mercadopago.StoreLocation{
			StreetNumber: "123",
			StreetName:   "Calle Falsa",
			CityName:     "Palermo",
			StateName:    "Capital Federal",
			Latitude:     -34.6037,
			Longitude:    -58.3816,
		},
	})
	if err == nil {
		fmt.Println("Sucursal creada con éxito.")
		return store, nil
	}

	if !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return nil, err
	}

	fmt.Println("La sucursal ya existe, buscando su id real...")
	return client.FindStoreByExternalID(ctx, externalID)
}
