package gamma

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gammadist/core/parallel"
	"github.com/YuminosukeSato/gammadist/pkg/errors"
	"github.com/YuminosukeSato/gammadist/pkg/log"
)

// vecThreshold is the vector length above which ProbVec and CDFVec
// evaluate in parallel.
const vecThreshold = 4096

// Distribution is a gamma distribution with validated parameters.
type Distribution struct {
	// K is the shape parameter.
	K float64
	// Theta is the scale parameter.
	Theta float64

	strategy CDFStrategy
}

// Option configures a Distribution.
type Option func(*Distribution)

// WithCDFStrategy selects how CDF is computed. The default is
// IncompleteGammaCDF.
func WithCDFStrategy(s CDFStrategy) Option {
	return func(d *Distribution) {
		d.strategy = s
	}
}

// WithStepsPerUnit switches CDF to IntegratedCDF with the given resolution.
func WithStepsPerUnit(steps float64) Option {
	return WithCDFStrategy(IntegratedCDF{StepsPerUnit: steps})
}

// NewDistribution returns a gamma distribution with shape k and scale theta.
// Both must be finite and strictly positive.
func NewDistribution(k, theta float64, opts ...Option) (*Distribution, error) {
	if err := errors.CheckPositive("k", k); err != nil {
		return nil, err
	}
	if err := errors.CheckPositive("theta", theta); err != nil {
		return nil, err
	}
	d := &Distribution{K: k, Theta: theta, strategy: IncompleteGammaCDF{}}
	for _, opt := range opts {
		opt(d)
	}
	if d.strategy == nil {
		return nil, errors.NewValidationError("strategy", "must not be nil", nil)
	}

	log.GetLoggerWithName("gamma.distribution").Debug("gamma distribution created",
		log.ShapeKey, k,
		log.ScaleKey, theta,
		log.StrategyKey, d.strategy.Name(),
	)
	return d, nil
}

// Distribution builds a validated Distribution from fitted parameters.
func (r FitResult) Distribution(opts ...Option) (*Distribution, error) {
	d, err := NewDistribution(r.K, r.Theta, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "fit result %s", r)
	}
	return d, nil
}

// Params returns the parameters as a FitResult.
func (d *Distribution) Params() FitResult {
	return FitResult{K: d.K, Theta: d.Theta}
}

// Strategy returns the CDF strategy in use.
func (d *Distribution) Strategy() CDFStrategy {
	return d.strategy
}

// Prob returns the density at x.
func (d *Distribution) Prob(x float64) float64 {
	return PDF(x, d.K, d.Theta)
}

// LogProb returns the log density at x.
func (d *Distribution) LogProb(x float64) float64 {
	return LogPDF(x, d.K, d.Theta)
}

// CDF returns P(X ≤ x).
func (d *Distribution) CDF(x float64) float64 {
	return d.strategy.CDF(x, d.K, d.Theta)
}

// Survival returns P(X > x). With IncompleteGammaCDF the upper tail is
// computed directly instead of as 1 - CDF.
func (d *Distribution) Survival(x float64) float64 {
	if _, ok := d.strategy.(IncompleteGammaCDF); ok {
		return Survival(x, d.K, d.Theta)
	}
	return 1 - d.CDF(x)
}

// Mean returns k*theta.
func (d *Distribution) Mean() float64 {
	return d.K * d.Theta
}

// Variance returns k*theta².
func (d *Distribution) Variance() float64 {
	return d.K * d.Theta * d.Theta
}

// Mode returns (k-1)*theta for k ≥ 1 and 0 otherwise.
func (d *Distribution) Mode() float64 {
	if d.K < 1 {
		return 0
	}
	return (d.K - 1) * d.Theta
}

// ProbVec evaluates Prob at every element of x.
func (d *Distribution) ProbVec(x mat.Vector) *mat.VecDense {
	return d.apply(x, log.OperationPDF, d.Prob)
}

// CDFVec evaluates CDF at every element of x.
func (d *Distribution) CDFVec(x mat.Vector) *mat.VecDense {
	return d.apply(x, log.OperationCDF, d.CDF)
}

func (d *Distribution) apply(x mat.Vector, op string, fn func(float64) float64) *mat.VecDense {
	n := x.Len()
	log.GetLoggerWithName("gamma.distribution").Debug("gamma batch evaluation",
		log.OperationKey, op,
		log.StrategyKey, d.strategy.Name(),
		log.BatchSizeKey, n,
	)
	if n == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(n, nil)
	parallel.ParallelizeWithThreshold(n, vecThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.SetVec(i, fn(x.AtVec(i)))
		}
	})
	return out
}
