// This file defines the attribute keys shared by every log record emitted by
// gammadist. Keys are hierarchical ("dist.shape", "data.samples") so records
// can be filtered by prefix.

package log

// Operation context.
const (
	// OperationKey names the operation being performed.
	// Standard values: OperationFit, OperationPDF, OperationCDF, OperationGoodnessOfFit.
	OperationKey = "op.name"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "op.component"

	// StrategyKey names the CDF strategy in use ("incomplete_gamma", "integration").
	StrategyKey = "op.strategy"
)

// Distribution parameters.
const (
	// ShapeKey records the shape parameter k.
	ShapeKey = "dist.shape"

	// ScaleKey records the scale parameter theta.
	ScaleKey = "dist.scale"
)

// Sample characteristics.
const (
	// SamplesKey indicates the number of values in a sample.
	SamplesKey = "data.samples"

	// BatchSizeKey indicates how many independent samples or points are
	// processed in one batch call.
	BatchSizeKey = "data.batch_size"

	// SampleMeanKey records the arithmetic mean of the sample.
	SampleMeanKey = "data.mean"
)

// Fit and goodness-of-fit results.
const (
	// LogMomentKey records the statistic s = ln(mean(x)) - mean(ln x)[/n].
	LogMomentKey = "fit.log_moment"

	// LogMomentVariantKey records which variant of s was computed.
	LogMomentVariantKey = "fit.log_moment_variant"

	// KSStatisticKey records the Kolmogorov-Smirnov distance.
	KSStatisticKey = "gof.ks"

	// LogLikelihoodKey records the total log-likelihood of a sample.
	LogLikelihoodKey = "gof.log_likelihood"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationFit           = "fit"
	OperationPDF           = "pdf"
	OperationCDF           = "cdf"
	OperationGoodnessOfFit = "goodness_of_fit"

	ErrorEmptyData    = "EMPTY_DATA"
	ErrorInvalidInput = "INVALID_INPUT"
	ErrorDegenerate   = "DEGENERATE_FIT"
)
