package models

// RejectedOrder records one order that failed validation, with its position
// in the original input.
type RejectedOrder struct {
	Order  Order  `json:"order"`
	Reason string `json:"reason"`
	Index  int    `json:"index"`
}

// ValidationSummary accumulates per-run validation accounting. It is built
// during a single validation pass and read-only afterwards.
type ValidationSummary struct {
	Reasons     map[string]int  `json:"reasons"`
	Rejected    []RejectedOrder `json:"rejected,omitempty"`
	TotalRows   int             `json:"total_rows"`
	ValidRows   int             `json:"valid_rows"`
	InvalidRows int             `json:"invalid_rows"`
}

// PaymentStatusCounts breaks orders down by canonical payment status.
type PaymentStatusCounts struct {
	Paid     int `json:"paid"`
	Pending  int `json:"pending"`
	Refunded int `json:"refunded"`
}

// Statistics holds aggregate figures over the transformed orders.
type Statistics struct {
	TotalOrders         int                 `json:"total_orders"`
	TotalRevenue        float64             `json:"total_revenue"`
	AverageRevenue      float64             `json:"average_revenue"`
	PaymentStatusCounts PaymentStatusCounts `json:"payment_status_counts"`
}

// Metadata describes the exported document.
type Metadata struct {
	TotalOrders int `json:"total_orders"`
}

// Document is the persisted output shape.
type Document struct {
	Statistics *Statistics `json:"statistics,omitempty"`
	Orders     []Order     `json:"orders"`
	Metadata   Metadata    `json:"metadata"`
}

// Result is returned to the caller after a completed pipeline run.
type Result struct {
	ValidationSummary *ValidationSummary `json:"validation_summary"`
	Statistics        *Statistics        `json:"statistics"`
	RunID             string             `json:"run_id"`
	TotalProcessed    int                `json:"total_processed"`
}
