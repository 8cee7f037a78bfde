package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckNumericalStability checks if values contain NaN or Inf and returns an
// error naming the first offending index.
func CheckNumericalStability(operation string, values []float64) error {
	for i, v := range values {
		if !IsFinite(v) {
			return NewNumericalInstabilityError(operation, []float64{v}, i)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, index int) error {
	if !IsFinite(value) {
		return NewNumericalInstabilityError(operation, []float64{value}, index)
	}
	return nil
}

// CheckSample validates an empirical sample for the gamma support: it must be
// non-empty and every value finite and strictly positive.
func CheckSample(op string, sample []float64) error {
	if len(sample) == 0 {
		return Wrapf(ErrEmptyData, "%s", op)
	}
	for i, v := range sample {
		if !IsFinite(v) || v <= 0 {
			return Wrapf(NewValidationError("sample", "values must be finite and positive", v),
				"%s: sample[%d]", op, i)
		}
	}
	return nil
}
