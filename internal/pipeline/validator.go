package pipeline

import (
	"strings"

	"shoplink/internal/models"
)

// Rejection reasons for numeric field checks. Missing-field rejections use
// a composite "Missing fields: a, b" reason built per record.
const (
	reasonInvalidQuantity  = "Invalid quantity format"
	reasonQuantityPositive = "Quantity must be positive"
	reasonInvalidPrice     = "Invalid price format"
	reasonPricePositive    = "Price must be positive"
	reasonInvalidTotal     = "Invalid total format"
	reasonTotalPositive    = "Total must be positive"
)

// requiredFields lists the fields every order must carry, in the order
// they appear in missing-field rejection reasons.
var requiredFields = []string{
	"order_id", "timestamp", "item",
	"quantity", "price", "payment_status", "total",
}

// Validator filters raw orders, rejecting ones with missing or implausible
// fields. Validation never mutates an order; accepted orders flow to the
// transformer exactly as read.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks each order and returns the ones that passed, in input
// order, together with a summary of the pass. Rejected orders are recorded
// in the summary with their input index and reason; they never abort the
// run.
func (v *Validator) Validate(orders []models.Order) ([]models.Order, *models.ValidationSummary) {
	summary := &models.ValidationSummary{
		TotalRows: len(orders),
		Reasons:   make(map[string]int),
	}

	var valid []models.Order

	for idx, order := range orders {
		reason, ok := v.validateOrder(order)
		if ok {
			valid = append(valid, order)
			summary.ValidRows++

			continue
		}

		summary.InvalidRows++
		summary.Reasons[reason]++
		summary.Rejected = append(summary.Rejected, models.RejectedOrder{
			Index:  idx,
			Order:  order,
			Reason: reason,
		})
	}

	return valid, summary
}

// validateOrder checks a single order, short-circuiting at the first
// failure. Returns the rejection reason and false if the order is invalid.
func (v *Validator) validateOrder(order models.Order) (string, bool) {
	if missing := missingFields(order); len(missing) > 0 {
		return "Missing fields: " + strings.Join(missing, ", "), false
	}

	qty, err := extractNumeric(order["quantity"], extractStrict)
	if err != nil {
		return reasonInvalidQuantity, false
	}

	if qty <= 0 {
		return reasonQuantityPositive, false
	}

	price, err := extractNumeric(order["price"], extractStrict)
	if err != nil {
		return reasonInvalidPrice, false
	}

	if price <= 0 {
		return reasonPricePositive, false
	}

	total, err := extractNumeric(order["total"], extractStrict)
	if err != nil {
		return reasonInvalidTotal, false
	}

	if total <= 0 {
		return reasonTotalPositive, false
	}

	return "", true
}

// missingFields returns the required fields that are absent, nil, or an
// empty string, in requiredFields order.
func missingFields(order models.Order) []string {
	var missing []string

	for _, field := range requiredFields {
		value, present := order[field]
		if !present || value == nil || value == "" {
			missing = append(missing, field)
		}
	}

	return missing
}
