package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("shape", "must be positive", -1.5)

	// 基本的なエラーメッセージの確認
	want := "gammadist: validation failed for parameter 'shape': must be positive (got: -1.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatal("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "shape" {
		t.Errorf("ParamName = %v, want shape", valErr.ParamName)
	}
}

func TestCheckPositive(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
		reason  string
	}{
		{name: "positive", value: 2.5},
		{name: "tiny positive", value: 1e-300},
		{name: "zero", value: 0, wantErr: true, reason: "must be positive"},
		{name: "negative", value: -3, wantErr: true, reason: "must be positive"},
		{name: "nan", value: math.NaN(), wantErr: true, reason: "must be finite"},
		{name: "inf", value: math.Inf(1), wantErr: true, reason: "must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPositive("theta", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckPositive() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Fatal("Error should be castable to *ValidationError")
			}
			if valErr.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", valErr.Reason, tt.reason)
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("KolmogorovSmirnov", "empty sample")

	want := "gammadist: KolmogorovSmirnov: empty sample"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ValueError型にキャスト可能か確認
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNumericalInstabilityErrorMessage(t *testing.T) {
	err := NewNumericalInstabilityError("log_likelihood", []float64{1, math.Inf(-1), 3, 4, 5, 6, 7}, 12)

	msg := err.Error()
	if !strings.Contains(msg, "log_likelihood at index 12") {
		t.Errorf("Error() = %v, want operation and index", msg)
	}
	// 5個を超える値は省略される
	if !strings.Contains(msg, "...") {
		t.Errorf("Error() = %v, want truncated values", msg)
	}
}

func TestDegenerateFitWarning(t *testing.T) {
	w := NewDegenerateFitWarning(1, 0, math.Inf(1), 0)

	want := "gamma fit is degenerate for 1 samples: s=0 gives k=+Inf, theta=0"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}
}

func TestWarnRouting(t *testing.T) {
	var handled, zerologged []error
	SetWarningHandler(func(w error) { handled = append(handled, w) })
	defer SetWarningHandler(func(w error) {})

	Warn(NewDegenerateFitWarning(1, 0, math.Inf(1), 0))
	if len(handled) != 1 {
		t.Fatalf("handler received %d warnings, want 1", len(handled))
	}

	// zerologが設定されている場合は優先される
	SetZerologWarnFunc(func(w error) { zerologged = append(zerologged, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewDegenerateFitWarning(2, -1, math.NaN(), math.NaN()))
	if len(handled) != 1 || len(zerologged) != 1 {
		t.Errorf("handled=%d zerologged=%d, want 1 and 1", len(handled), len(zerologged))
	}
}

func TestCheckSample(t *testing.T) {
	if err := CheckSample("Fit", []float64{1, 2, 3}); err != nil {
		t.Errorf("CheckSample() unexpected error: %v", err)
	}

	err := CheckSample("Fit", nil)
	if !Is(err, ErrEmptyData) {
		t.Errorf("CheckSample(nil) = %v, want ErrEmptyData", err)
	}

	err = CheckSample("Fit", []float64{1, 0, 3})
	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatalf("CheckSample() = %v, want *ValidationError", err)
	}
	if !strings.Contains(err.Error(), "sample[1]") {
		t.Errorf("Error() = %v, want offending index", err.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("cdf", []float64{0, 0.5, 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckNumericalStability("cdf", []float64{0, math.NaN(), 1})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("got %v, want *NumericalInstabilityError", err)
	}
	if numErr.Iteration != 1 {
		t.Errorf("Iteration = %d, want 1", numErr.Iteration)
	}

	if err := CheckScalar("pdf", math.Inf(1), 0); err == nil {
		t.Error("CheckScalar(+Inf) should fail")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: got %d values", "FitSample", 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in FitSample: got 0 values"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}
