package abstats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"goabtest/domain/core"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultAlpha, cfg.Alpha)
	assert.Equal(t, DefaultPower, cfg.Power)

	// Explicit values survive
	cfg = Config{Alpha: 0.01, Power: 0.9}.WithDefaults()
	assert.Equal(t, 0.01, cfg.Alpha)
	assert.Equal(t, 0.9, cfg.Power)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Alpha: 1.5, Power: 0.8},
		{Alpha: -0.1, Power: 0.8},
		{Alpha: 0.05, Power: 1.0},
		{Alpha: 0.05, Power: -0.2},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		if !core.IsConfigError(err) {
			t.Errorf("expected config error for %+v, got %v", cfg, err)
		}
	}
}

func TestNewResultRounding(t *testing.T) {
	r, err := NewResult(Result{
		Test:      TestProportionsZ,
		PValue:    0.1527082,
		Statistic: 1.4300305,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.15271, r.PValue)
	assert.Equal(t, 1.43, r.Statistic)
}

func TestNewResultValidation(t *testing.T) {
	_, err := NewResult(Result{Test: TestType("bogus")})
	assert.Error(t, err)

	_, err = NewResult(Result{Test: TestWelchT, PValue: 1.7})
	assert.Error(t, err)

	_, err = NewResult(Result{Test: TestWelchT, SampleSize: SampleSizeReport{Finite: true, Required: 0}})
	assert.Error(t, err)

	// NaN p-value is the documented degenerate encoding, not an error
	r, err := NewResult(Result{Test: TestWelchT, PValue: math.NaN(), DF: math.NaN()})
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(r.PValue))
	assert.True(t, math.IsNaN(r.DF))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.15271, Round(0.1527082, 5))
	assert.Equal(t, 3.97, Round(3.9703446, 2))
	assert.Equal(t, -1.43, Round(-1.4300305, 2))
	assert.True(t, math.IsNaN(Round(math.NaN(), 5)))
}

func TestIntervalHelpers(t *testing.T) {
	iv := Interval{Lower: -0.0074, Upper: 0.0474}
	assert.True(t, iv.Defined())
	assert.InDelta(t, 0.02, iv.Mid(), 1e-12)

	assert.False(t, Interval{Lower: math.NaN(), Upper: math.NaN()}.Defined())
}
