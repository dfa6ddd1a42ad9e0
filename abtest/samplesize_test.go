package abtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"goabtest/domain/abstats"
	"goabtest/internal/distributions"
)

func TestMinimumSampleSize(t *testing.T) {
	dist := distributions.New()
	cfg := abstats.DefaultConfig()

	// Proportions case from the z-test example: k=1, variances
	// 0.1*0.9 and 0.12*0.88, effect 0.02.
	got := minimumSampleSize(dist, cfg, 1, 0.09, 0.1056, 0.02, 1000)
	assert.True(t, got.Finite)
	assert.Equal(t, 3839, got.Required)
	assert.InDelta(t, 26.05, got.RatioPct, 0.01)

	// Sign of the effect must not matter
	neg := minimumSampleSize(dist, cfg, 1, 0.09, 0.1056, -0.02, 1000)
	assert.Equal(t, got, neg)
}

func TestMinimumSampleSize_UnbalancedGroups(t *testing.T) {
	dist := distributions.New()
	cfg := abstats.DefaultConfig()

	// A smaller control group (k < 1) inflates the control variance term,
	// so the requirement grows relative to the balanced design.
	balanced := minimumSampleSize(dist, cfg, 1, 1.0, 1.0, 0.5, 100)
	unbalanced := minimumSampleSize(dist, cfg, 0.5, 1.0, 1.0, 0.5, 100)
	assert.Greater(t, unbalanced.Required, balanced.Required)
}

func TestMinimumSampleSize_HigherPowerNeedsMoreSamples(t *testing.T) {
	dist := distributions.New()

	low := minimumSampleSize(dist, abstats.Config{Alpha: 0.05, Power: 0.8}, 1, 1.0, 1.0, 0.5, 100)
	high := minimumSampleSize(dist, abstats.Config{Alpha: 0.05, Power: 0.95}, 1, 1.0, 1.0, 0.5, 100)
	assert.Greater(t, high.Required, low.Required)
}

func TestMinimumSampleSize_Degenerate(t *testing.T) {
	dist := distributions.New()
	cfg := abstats.DefaultConfig()

	cases := []struct {
		name                  string
		k, varC, varT, effect float64
	}{
		{"zero ratio", 0, 0.09, 0.1056, 0.02},
		{"negative ratio", -1, 0.09, 0.1056, 0.02},
		{"zero effect", 1, 0.09, 0.1056, 0},
		{"nan effect", 1, 0.09, 0.1056, math.NaN()},
		{"zero variances", 1, 0, 0, 2.0},
	}
	for _, tc := range cases {
		got := minimumSampleSize(dist, cfg, tc.k, tc.varC, tc.varT, tc.effect, 100)
		if got.Finite {
			t.Errorf("%s: expected infinite requirement, got %+v", tc.name, got)
		}
	}
}
