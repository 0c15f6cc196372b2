package pipeline

import (
	"fmt"
	"strings"
)

// Canonical payment status categories used for aggregate reporting.
const (
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusRefunded = "refunded"
)

// statusSynonyms maps known payment status variations to their canonical
// category.
var statusSynonyms = map[string]string{
	"paid":       StatusPaid,
	"complete":   StatusPaid,
	"completed":  StatusPaid,
	"success":    StatusPaid,
	"pending":    StatusPending,
	"processing": StatusPending,
	"awaiting":   StatusPending,
	"refunded":   StatusRefunded,
	"refund":     StatusRefunded,
	"cancelled":  StatusRefunded,
	"canceled":   StatusRefunded,
}

// normalizePaymentStatus maps a payment status value to its canonical
// category. Unrecognized values pass through trimmed and lowercased; they
// are only bucketed as pending later, during aggregation.
func normalizePaymentStatus(value any) string {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprintf("%v", value)
	}

	s = strings.ToLower(strings.TrimSpace(s))

	if canonical, ok := statusSynonyms[s]; ok {
		return canonical
	}

	return s
}
