// Package exporter persists cleaned orders and statistics as a JSON document.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shoplink/internal/models"
)

// Exporter writes the result document to a JSON file.
type Exporter struct {
	path   string
	pretty bool
}

// NewExporter creates an exporter for the given output path.
func NewExporter(path string, pretty bool) *Exporter {
	return &Exporter{path: path, pretty: pretty}
}

// Write persists the orders under the document shape {orders, metadata,
// statistics}. The statistics key is omitted when stats is nil. Parent
// directories are created as needed.
func (e *Exporter) Write(orders []models.Order, stats *models.Statistics) error {
	doc := models.Document{
		Orders:     orders,
		Metadata:   models.Metadata{TotalOrders: len(orders)},
		Statistics: stats,
	}

	var (
		data []byte
		err  error
	)

	if e.pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(e.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
