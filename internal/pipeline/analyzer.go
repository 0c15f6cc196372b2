package pipeline

import (
	"strings"

	"shoplink/internal/models"
)

// Analyzer reduces transformed orders into aggregate statistics.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes order counts, revenue figures, and the payment status
// breakdown. The average divides the already-rounded revenue sum. Orders
// with an unrecognized payment status are counted as pending here; their
// exported status stays whatever the transformer produced.
func (a *Analyzer) Analyze(orders []models.Order) models.Statistics {
	if len(orders) == 0 {
		return models.Statistics{}
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.Float("total")
	}

	stats := models.Statistics{
		TotalOrders:         len(orders),
		TotalRevenue:        round2(revenue),
		PaymentStatusCounts: a.countStatuses(orders),
	}
	stats.AverageRevenue = round2(stats.TotalRevenue / float64(stats.TotalOrders))

	return stats
}

func (a *Analyzer) countStatuses(orders []models.Order) models.PaymentStatusCounts {
	var counts models.PaymentStatusCounts

	for _, order := range orders {
		switch strings.ToLower(order.Str("payment_status")) {
		case StatusPaid:
			counts.Paid++
		case StatusRefunded:
			counts.Refunded++
		default:
			counts.Pending++
		}
	}

	return counts
}
