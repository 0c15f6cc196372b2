// Package models defines the order record types shared across pipeline stages.
package models

// Order is one order record as decoded from JSON. Keys are field names,
// values are whatever the document carried (string, float64, bool, nil, or
// nested containers). Raw orders may be missing any field; transformed
// orders always carry numeric quantity/price/total and a normalized
// payment_status.
type Order map[string]any

// Clone returns an independent shallow copy of the order. Later stages
// operate on copies so raw input is never mutated.
func (o Order) Clone() Order {
	clone := make(Order, len(o))
	for k, v := range o {
		clone[k] = v
	}

	return clone
}

// Str returns the string value of a field, or "" if absent or not a string.
func (o Order) Str(key string) string {
	s, _ := o[key].(string)

	return s
}

// Float returns the float64 value of a field, or 0 if absent or not numeric.
func (o Order) Float(key string) float64 {
	f, _ := o[key].(float64)

	return f
}
