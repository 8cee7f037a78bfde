package gamma

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"github.com/YuminosukeSato/gammadist/pkg/errors"
	"github.com/YuminosukeSato/gammadist/pkg/log"
)

// quantileSample returns n deterministic draws from Gamma(k, theta): the
// quantiles at the midpoints (i+0.5)/n.
func quantileSample(n int, k, theta float64) []float64 {
	sample := make([]float64, n)
	for i := range sample {
		p := (float64(i) + 0.5) / float64(n)
		sample[i] = theta * mathext.GammaIncRegInv(k, p)
	}
	return sample
}

func TestFitSingleElement(t *testing.T) {
	// s = ln(x) - ln(x)/1 = 0 exactly, so k = 6/0 and theta = x/k
	for _, m := range []LogMoment{LogMomentPerSample, LogMomentMinka} {
		t.Run(m.String(), func(t *testing.T) {
			res := Fit([]float64{5}, WithLogMoment(m))
			assert.True(t, math.IsInf(res.K, 1), "k = %v", res.K)
			assert.Equal(t, 0.0, res.Theta)
		})
	}
}

func TestFitPerSampleLogMomentPinned(t *testing.T) {
	sample := []float64{1, math.E, math.Exp(2)}

	res := Fit(sample)
	assert.InEpsilon(t, 0.6209212986076563, res.K, 1e-9)
	assert.InEpsilon(t, 5.962826503292557, res.Theta, 1e-9)

	minka := Fit(sample, WithLogMoment(LogMomentMinka))
	assert.InEpsilon(t, 1.7582614242841543, minka.K, 1e-9)
	assert.InEpsilon(t, 2.105742595873621, minka.Theta, 1e-9)

	other := Fit([]float64{2, 4, 8})
	assert.InEpsilon(t, 0.5687537620983217, other.K, 1e-9)
	assert.InEpsilon(t, 8.205073931203167, other.Theta, 1e-9)
}

func TestFitRoundTrip(t *testing.T) {
	sample := quantileSample(2000, 2, 3)

	res := Fit(sample, WithLogMoment(LogMomentMinka))
	assert.InEpsilon(t, 2.0, res.K, 0.02)
	assert.InEpsilon(t, 3.0, res.Theta, 0.02)

	// the default statistic divides mean(ln x) by n once more and lands far
	// from the generating parameters
	legacy := Fit(sample)
	assert.InDelta(t, 0.3665, legacy.K, 2e-3)
	assert.Greater(t, math.Abs(legacy.K-2), 1.0)
}

func TestFitRoundTripShapes(t *testing.T) {
	for _, p := range [][2]float64{{0.7, 1}, {1, 5}, {4, 0.25}, {12, 2}} {
		res := Fit(quantileSample(5000, p[0], p[1]), WithLogMoment(LogMomentMinka))
		assert.InEpsilonf(t, p[0], res.K, 0.05, "k0=%v theta0=%v", p[0], p[1])
		assert.InEpsilonf(t, p[1], res.Theta, 0.05, "k0=%v theta0=%v", p[0], p[1])
	}
}

func TestFitNegativeRadicand(t *testing.T) {
	// s = ln(0.1) - ln(0.1)/2 ≈ -1.15 puts (s-3)² + 24s below zero
	res := Fit([]float64{0.1, 0.1})
	assert.True(t, math.IsNaN(res.K))
	assert.True(t, math.IsNaN(res.Theta))
}

func TestFitInvalidInputPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Fit([]float64{1, -2, 3}).K))
	assert.True(t, math.IsNaN(Fit(nil).K))
}

func TestFitSampleValidation(t *testing.T) {
	_, err := FitSample(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData), "got %v", err)

	_, err = FitSample([]float64{1, 0, 2})
	var valErr *errors.ValidationError
	require.True(t, errors.As(err, &valErr), "got %v", err)
	assert.Equal(t, "sample", valErr.ParamName)

	_, err = FitSample([]float64{1, math.Inf(1)})
	assert.Error(t, err)

	sample := quantileSample(500, 3, 1.5)
	got, err := FitSample(sample, WithLogMoment(LogMomentMinka))
	require.NoError(t, err)
	assert.Equal(t, Fit(sample, WithLogMoment(LogMomentMinka)), got)
}

func TestFitSampleLogsAndWarns(t *testing.T) {
	provider, buffer := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	defer log.SetProvider(log.NewZerologProvider(&strings.Builder{}, log.LevelWarn))

	res, err := FitSample([]float64{4})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.K, 1))

	tl := provider.Logger()
	assert.True(t, tl.ContainsMessage("gamma fit computed"), buffer.String())
	assert.True(t, tl.ContainsField(log.SamplesKey, 1.0))
	assert.True(t, tl.ContainsField(log.LogMomentVariantKey, "per_sample"))
	assert.True(t, tl.ContainsField(log.ShapeKey, "+Inf"))
	assert.True(t, tl.ContainsField(log.SampleMeanKey, 4.0))
	assert.Contains(t, buffer.String(), log.DurationMsKey)
	assert.True(t, tl.ContainsMessage("gamma fit is degenerate for 1 samples"), buffer.String())

	tl.Clear()
	_, err = FitSample(quantileSample(100, 2, 3), WithLogMoment(LogMomentMinka))
	require.NoError(t, err)
	assert.False(t, tl.ContainsMessage("degenerate"))
}

func TestFitSampleLogsRejection(t *testing.T) {
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	defer log.SetProvider(log.NewZerologProvider(&strings.Builder{}, log.LevelWarn))
	tl := provider.Logger()

	_, err := FitSample(nil)
	require.Error(t, err)
	assert.True(t, tl.ContainsField(log.ErrorCodeKey, log.ErrorEmptyData))

	tl.Clear()
	_, err = FitSample([]float64{1, 0, 2})
	require.Error(t, err)
	assert.True(t, tl.ContainsField(log.ErrorCodeKey, log.ErrorInvalidInput))
	assert.False(t, tl.ContainsMessage("gamma fit computed"))
}

func TestFitManyLogsBatchSize(t *testing.T) {
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	defer log.SetProvider(log.NewZerologProvider(&strings.Builder{}, log.LevelWarn))

	FitMany([][]float64{{1, 2, 3}, {2, 4, 8}, {5}})

	tl := provider.Logger()
	assert.True(t, tl.ContainsMessage("gamma batch fit computed"))
	assert.True(t, tl.ContainsField(log.BatchSizeKey, 3.0))
}

func TestFitMany(t *testing.T) {
	samples := make([][]float64, 40)
	for i := range samples {
		samples[i] = quantileSample(50+i, 1+float64(i)/10, 2)
	}
	samples[7] = []float64{3}

	for _, m := range []LogMoment{LogMomentPerSample, LogMomentMinka} {
		got := FitMany(samples, WithLogMoment(m))
		require.Len(t, got, len(samples))
		for i, s := range samples {
			want := Fit(s, WithLogMoment(m))
			if i == 7 {
				assert.True(t, math.IsInf(got[i].K, 1))
				continue
			}
			assert.Equalf(t, want, got[i], "sample %d", i)
		}
	}
	assert.Empty(t, FitMany(nil))
}

func TestLogMomentString(t *testing.T) {
	assert.Equal(t, "per_sample", LogMomentPerSample.String())
	assert.Equal(t, "minka", LogMomentMinka.String())
	assert.Equal(t, "LogMoment(9)", LogMoment(9).String())
}
