package gamma

import (
	"math"

	"github.com/YuminosukeSato/gammadist/special"
)

// ExtrapolationStep is the step h used to approximate the density at x = 0
// when k < 1.
const ExtrapolationStep = 0.0001

// PDF returns the gamma density at x for shape k and scale theta.
//
// For k < 1 the density diverges at x = 0; PDF(0, k, theta) then returns
// the extrapolation pdf(h) + (pdf(h) - pdf(2h)) / h with h =
// ExtrapolationStep, a finite stand-in whose error depends on the fixed h.
// Points below the support (x < 0) have density 0.
func PDF(x, k, theta float64) float64 {
	if k >= 1 || x != 0 {
		return density(x, k, theta)
	}

	h := ExtrapolationStep
	pdfOfH := density(h, k, theta)
	pdfOf2H := density(2*h, k, theta)
	return pdfOfH + (pdfOfH-pdfOf2H)/h
}

// LogPDF returns the natural logarithm of PDF(x, k, theta).
func LogPDF(x, k, theta float64) float64 {
	if x > 0 && !math.IsInf(x, 1) {
		ld, sign := logDensity(x, k, theta)
		if sign < 0 {
			return math.NaN()
		}
		return ld
	}
	return math.Log(PDF(x, k, theta))
}

// density is x^(k-1) * exp(-x/theta) / Γ(k) / theta^k. Positive x is
// evaluated in log space so that large k does not overflow x^(k-1) or Γ(k).
func density(x, k, theta float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0, math.IsInf(x, 1):
		return 0
	case x == 0:
		return math.Pow(x, k-1) * math.Exp(-x/theta) / special.Gamma(k) / math.Pow(theta, k)
	}
	ld, sign := logDensity(x, k, theta)
	return float64(sign) * math.Exp(ld)
}

// logDensity returns ln|density| and the sign of Γ(k), which is negative
// for some k < 0.
func logDensity(x, k, theta float64) (float64, int) {
	lg, sign := special.LogGamma(k)
	return (k-1)*math.Log(x) - x/theta - lg - k*math.Log(theta), sign
}
