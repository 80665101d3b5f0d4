package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
)

// ErrNotConfigured means provisioning has not run yet (or its result file was
// removed), so there is no QR to serve.
var ErrNotConfigured = errors.New("setup result file not found")

// SetupStore persists the provisioning result: the POS record the provider
// returned, QR image URL included. It is the only local state in the system,
// written once by the setup command and read-only at request time.
type SetupStore interface {
	Load() (*mercadopago.POS, error)
	Save(pos *mercadopago.POS) error
}

type fileStore struct {
	path string
}

// NewFileStore creates a SetupStore backed by a flat JSON file.
func NewFileStore(path string) SetupStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (*mercadopago.POS, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to read setup file %s: %w", s.path, err)
	}

	var pos mercadopago.POS
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("failed to decode setup file %s: %w", s.path, err)
	}
	return &pos, nil
}

func (s *fileStore) Save(pos *mercadopago.POS) error {
	data, err := json.MarshalIndent(pos, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode setup result: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write setup file %s: %w", s.path, err)
	}
	return nil
}
