package abstats

import (
	"fmt"
	"math"

	"goabtest/domain/core"
)

// Epsilon guards divisions against degenerate inputs (zero standard error,
// near-zero control value). Shared by both tests so their numeric
// conventions stay identical.
const Epsilon = 1e-10

// Default test configuration
const (
	DefaultAlpha = 0.05
	DefaultPower = 0.8
)

// TestType defines the statistical test performed
type TestType string

const (
	TestProportionsZ TestType = "proportions_ztest" // Two-proportion z-test
	TestWelchT       TestType = "welch_ttest"       // Welch's unequal-variance t-test
)

// Config carries the per-call test configuration. The zero value means
// "use defaults"; explicit values must lie strictly inside (0, 1).
type Config struct {
	Alpha float64 `json:"alpha"` // Significance level (two-sided)
	Power float64 `json:"power"` // Target power 1 - beta for the MSS requirement
}

// DefaultConfig returns the standard alpha=0.05, power=0.8 configuration
func DefaultConfig() Config {
	return Config{Alpha: DefaultAlpha, Power: DefaultPower}
}

// WithDefaults fills zero-valued fields with their defaults
func (c Config) WithDefaults() Config {
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if c.Power == 0 {
		c.Power = DefaultPower
	}
	return c
}

// Validate checks that alpha and power are usable significance scalars
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return core.NewConfigError("alpha", c.Alpha)
	}
	if c.Power <= 0 || c.Power >= 1 {
		return core.NewConfigError("power", c.Power)
	}
	return nil
}

// Interval is a two-sided confidence interval. NaN bounds mean the interval
// is undefined for these inputs (e.g. zero-variance Welch groups).
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Defined reports whether both bounds are real numbers
func (iv Interval) Defined() bool {
	return !math.IsNaN(iv.Lower) && !math.IsNaN(iv.Upper)
}

// Mid returns the interval midpoint
func (iv Interval) Mid() float64 {
	return (iv.Lower + iv.Upper) / 2
}

// SampleSizeReport captures minimum-sample-size adequacy for the treatment
// group. Finite=false means no finite requirement exists (zero effect,
// degenerate proportions, or unusable group ratio).
type SampleSizeReport struct {
	RatioPct float64 `json:"ratio_pct"` // treatment n as % of the requirement
	Required int     `json:"required"`  // minimum treatment sample count (ceiling)
	Finite   bool    `json:"finite"`
}

// Result is the single-row record produced by one test call.
// INVARIANTS:
// - PValue in [0.0, 1.0], or NaN exactly when DF is undefined (Welch only)
// - SampleSize.Required >= 1 whenever SampleSize.Finite
// - CI bounds are symmetric around DeltaAbsolute / DeltaRelative under the
//   critical value used by the test
type Result struct {
	Test          TestType         `json:"test_type"`
	MetricFormula string           `json:"metric_formula"` // treatment numerator/denominator
	MetricValue   float64          `json:"metric_value"`   // treatment proportion or mean
	DeltaAbsolute float64          `json:"delta_absolute"` // treatment - control
	DeltaRelative float64          `json:"delta_relative"` // % change vs control; NaN when control ~ 0
	PValue        float64          `json:"p_value"`        // two-sided, rounded to 5 decimals
	Statistic     float64          `json:"statistic"`      // z or t, rounded to 2 decimals
	DF            float64          `json:"df,omitempty"`   // Welch-Satterthwaite df, rounded to 2 decimals
	AbsoluteCI    Interval         `json:"ci_absolute"`
	RelativeCI    Interval         `json:"ci_relative"`
	SampleSize    SampleSizeReport `json:"mss"`
}

// NewResult builds a validated result record. Computation packages hand in
// raw values; rounding of PValue/Statistic/DF to the legacy precision
// happens here so every test reports identically.
func NewResult(r Result) (*Result, error) {
	r.PValue = Round(r.PValue, 5)
	r.Statistic = Round(r.Statistic, 2)
	r.DF = Round(r.DF, 2)

	if err := validateResult(r); err != nil {
		return nil, err
	}
	return &r, nil
}

func validateResult(r Result) error {
	if r.Test != TestProportionsZ && r.Test != TestWelchT {
		return fmt.Errorf("unknown test type %q", r.Test)
	}
	if !math.IsNaN(r.PValue) && (r.PValue < 0.0 || r.PValue > 1.0) {
		return fmt.Errorf("p-value must be in [0.0, 1.0], got %f", r.PValue)
	}
	if r.SampleSize.Finite && r.SampleSize.Required < 1 {
		return fmt.Errorf("finite sample-size requirement must be >= 1, got %d", r.SampleSize.Required)
	}
	return nil
}

// Round rounds to the given number of decimals, passing NaN through
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) {
		return v
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
