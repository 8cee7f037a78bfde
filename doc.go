// Package gammadist provides the gamma distribution for Go: density,
// cumulative distribution and closed-form parameter estimation, parameterized
// by shape k and scale theta.
//
// # Installation
//
//	go get github.com/YuminosukeSato/gammadist
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gammadist/gamma"
//	)
//
//	func main() {
//	    sample := []float64{1.2, 2.5, 3.1, 4.8, 0.7, 6.3, 2.2, 3.9}
//
//	    res, err := gamma.FitSample(sample, gamma.WithLogMoment(gamma.LogMomentMinka))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    d, err := res.Distribution()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res, d.CDF(5))
//	}
//
// # Packages
//
//   - gamma: PDF, CDF (incomplete gamma or Simpson integration), Fit and the
//     validated Distribution type
//   - special: gamma function, incomplete gamma, Simpson quadrature, mean
//   - metrics: Kolmogorov-Smirnov statistic and log-likelihood
//   - core/parallel: index range parallelization used by batch calls
//   - pkg/errors: structured errors and warnings on cockroachdb/errors
//   - pkg/log: slog-compatible logging interface with a zerolog provider
//
// # Error handling
//
// The package level functions of gamma propagate NaN and infinities for
// out-of-domain input. NewDistribution and FitSample validate and return
// errors that carry stack traces.
//
// # License
//
// gammadist is released under the MIT License.
package gammadist
