// Package reader loads raw order records from JSON files.
package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shoplink/internal/models"
)

// Loader error conditions. All are fatal to a pipeline run.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNotArray          = errors.New("JSON must contain a list of orders")
	ErrEmptyInput        = errors.New("file is empty")
)

// Reader reads order data from a JSON file.
type Reader struct {
	path string
}

// NewReader creates a reader for the given file path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load reads and decodes the input file into a sequence of raw orders.
func (r *Reader) Load() ([]models.Order, error) {
	if _, err := os.Stat(r.path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, r.path)
	}

	if ext := strings.ToLower(filepath.Ext(r.path)); ext != ".json" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, fmt.Errorf("%w: got %s", ErrNotArray, typeErr.Value)
		}

		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}

	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, r.path)
	}

	return orders, nil
}
