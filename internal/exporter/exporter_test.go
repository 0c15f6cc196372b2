package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shoplink/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{"order_id": "ORD001", "total": 50.0, "payment_status": "paid"},
		{"order_id": "ORD002", "total": 20.0, "payment_status": "pending"},
	}
}

func TestExporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	stats := &models.Statistics{
		TotalOrders:    2,
		TotalRevenue:   70.0,
		AverageRevenue: 35.0,
		PaymentStatusCounts: models.PaymentStatusCounts{
			Paid:    1,
			Pending: 1,
		},
	}

	if err := NewExporter(path, true).Write(sampleOrders(), stats); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Output file not written: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	for _, key := range []string{"orders", "metadata", "statistics"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("output document missing %q key", key)
		}
	}

	var parsed models.Document
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Output does not match document shape: %v", err)
	}

	if parsed.Metadata.TotalOrders != 2 {
		t.Errorf("metadata.total_orders = %d, want 2", parsed.Metadata.TotalOrders)
	}

	if parsed.Statistics.TotalRevenue != 70.0 {
		t.Errorf("statistics.total_revenue = %v, want 70.0", parsed.Statistics.TotalRevenue)
	}
}

func TestExporter_Write_OmitsNilStatistics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")

	if err := NewExporter(path, false).Write(sampleOrders(), nil); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Output file not written: %v", err)
	}

	if strings.Contains(string(data), `"statistics"`) {
		t.Error("statistics key present for nil stats")
	}
}

func TestExporter_Write_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "output.json")

	if err := NewExporter(path, true).Write(sampleOrders(), nil); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not created under nested path: %v", err)
	}
}

func TestExporter_Write_PrettyPrint(t *testing.T) {
	tmpDir := t.TempDir()

	prettyPath := filepath.Join(tmpDir, "pretty.json")
	if err := NewExporter(prettyPath, true).Write(sampleOrders(), nil); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	compactPath := filepath.Join(tmpDir, "compact.json")
	if err := NewExporter(compactPath, false).Write(sampleOrders(), nil); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	pretty, _ := os.ReadFile(prettyPath)
	compact, _ := os.ReadFile(compactPath)

	if !strings.Contains(string(pretty), "\n") {
		t.Error("pretty output has no line breaks")
	}

	if strings.Contains(string(compact), "\n  ") {
		t.Error("compact output is indented")
	}
}

func TestExporter_Write_IOErrorWrapped(t *testing.T) {
	// Parent "directory" is a regular file, so MkdirAll must fail.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")

	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	err := NewExporter(filepath.Join(blocker, "output.json"), true).Write(sampleOrders(), nil)
	if err == nil {
		t.Fatal("Write expected error but got nil")
	}

	if !strings.Contains(err.Error(), "output directory") {
		t.Errorf("Write error = %v, want wrapped directory error", err)
	}
}
