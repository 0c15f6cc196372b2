// Package pipeline implements the order cleaning pipeline: validation,
// transformation, aggregation, and the orchestration of those stages.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrNotNumeric is returned when a value cannot be converted to a number.
var ErrNotNumeric = errors.New("cannot convert to numeric")

// nonNumericPattern matches every character stripped before parsing, which
// discards currency symbols, letters, and whitespace ("$15.99" -> "15.99",
// "N2000" -> "2000", "45 dollars" -> "45").
var nonNumericPattern = regexp.MustCompile(`[^0-9.]`)

// extractMode selects how extractNumeric treats a string that is empty
// after cleaning.
type extractMode int

const (
	// extractStrict fails on empty-after-cleaning input. Used by the
	// validator, where the failure becomes a rejection reason.
	extractStrict extractMode = iota
	// extractLenient yields 0 on empty-after-cleaning input. Used by the
	// transformer, whose input already passed strict validation.
	extractLenient
)

// extractNumeric converts a decoded JSON value into a float64. Numbers pass
// through unchanged; strings are cleaned of currency noise and parsed.
// Anything else cannot be converted.
func extractNumeric(value any, mode extractMode) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		cleaned := nonNumericPattern.ReplaceAllString(v, "")
		if cleaned == "" {
			if mode == extractLenient {
				return 0, nil
			}

			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}

		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, value)
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
