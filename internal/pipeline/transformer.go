package pipeline

import (
	"fmt"

	"shoplink/internal/models"
	"shoplink/pkg/utils"
)

// Transformer normalizes validated orders: numeric fields are coerced,
// payment status is canonicalized, text is cleaned, and the total is
// recomputed from quantity and price.
type Transformer struct {
	strings *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		strings: utils.NewStringHelper(),
	}
}

// Transform normalizes each order, one-to-one and order-preserving. Every
// output order is an independent copy; the input slice is never mutated.
// An error is returned only when a value cannot be coerced at all, which
// validated input does not produce.
func (t *Transformer) Transform(orders []models.Order) ([]models.Order, error) {
	transformed := make([]models.Order, 0, len(orders))

	for i, order := range orders {
		out, err := t.transformOrder(order.Clone())
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}

		transformed = append(transformed, out)
	}

	return transformed, nil
}

// transformOrder normalizes a single order in place on its copy.
func (t *Transformer) transformOrder(order models.Order) (models.Order, error) {
	for _, field := range []string{"quantity", "price", "total"} {
		value, err := extractNumeric(order[field], extractLenient)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}

		order[field] = value
	}

	order["payment_status"] = normalizePaymentStatus(order["payment_status"])

	if item, ok := order["item"]; ok {
		order["item"] = t.cleanText(item)
	}

	// The total read from input only served validation; the exported value
	// is always recomputed from quantity and price.
	order["total"] = round2(order.Float("quantity") * order.Float("price"))

	return order, nil
}

// cleanText trims a text field and collapses internal whitespace runs to a
// single space.
func (t *Transformer) cleanText(value any) string {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprintf("%v", value)
	}

	return t.strings.NormalizeWhitespace(t.strings.TrimWhitespace(s))
}
