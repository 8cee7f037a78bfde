// Package metrics scores how well a fitted distribution describes a sample.
package metrics

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/gammadist/pkg/errors"
	"github.com/YuminosukeSato/gammadist/pkg/log"
	"gonum.org/v1/gonum/floats"
)

// KolmogorovSmirnov は標本の経験分布関数と cdf との最大距離
// sup|F_n(x) - F(x)| を計算する
func KolmogorovSmirnov(sample []float64, cdf func(float64) float64) (float64, error) {
	n := len(sample)
	if n == 0 {
		return 0, errors.NewValueError("KolmogorovSmirnov", "empty sample")
	}

	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	// 各点で経験分布の左極限と右極限の両方と比較する
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		if err := errors.CheckScalar("KolmogorovSmirnov", f, i); err != nil {
			return 0, err
		}
		lower := f - float64(i)/float64(n)
		upper := float64(i+1)/float64(n) - f
		d = math.Max(d, math.Max(lower, upper))
	}

	log.GetLoggerWithName("metrics").Debug("kolmogorov-smirnov computed",
		log.OperationKey, log.OperationGoodnessOfFit,
		log.SamplesKey, n,
		log.KSStatisticKey, d,
	)
	return d, nil
}

// LogLikelihood は標本の対数尤度 Σ logPDF(x) を計算する
func LogLikelihood(sample []float64, logPDF func(float64) float64) (float64, error) {
	if len(sample) == 0 {
		return 0, errors.NewValueError("LogLikelihood", "empty sample")
	}

	terms := make([]float64, len(sample))
	for i, x := range sample {
		terms[i] = logPDF(x)
	}
	if err := errors.CheckNumericalStability("LogLikelihood", terms); err != nil {
		return 0, err
	}
	ll := floats.Sum(terms)

	log.GetLoggerWithName("metrics").Debug("log-likelihood computed",
		log.OperationKey, log.OperationGoodnessOfFit,
		log.SamplesKey, len(sample),
		log.LogLikelihoodKey, ll,
	)
	return ll, nil
}
