// Package abtest computes classical two-sample hypothesis tests for A/B
// experiment analysis: a two-proportion z-test over summary counts and a
// Welch (unequal-variance) t-test over raw observations. Both are pure
// functions of their inputs and are safe for concurrent use.
package abtest

import (
	"math"

	"goabtest/domain/abstats"
	"goabtest/domain/core"
	"goabtest/internal/distributions"
)

// ProportionsZTest performs a z-test for the difference of two independent
// proportions (control vs treatment), given observation and success counts
// for each group. It reports the treatment point estimate, absolute and
// relative uplift with confidence intervals, the two-sided p-value, and the
// minimum treatment sample size needed to detect the observed effect at the
// configured alpha/power.
func ProportionsZTest(controlN, controlSuccess, treatmentN, treatmentSuccess int, cfg abstats.Config) (*abstats.Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if controlN <= 0 {
		return nil, core.NewSampleSizeError("control", controlN)
	}
	if treatmentN <= 0 {
		return nil, core.NewSampleSizeError("treatment", treatmentN)
	}
	if controlSuccess < 0 || controlSuccess > controlN {
		return nil, core.NewSuccessRangeError("control", controlSuccess, controlN)
	}
	if treatmentSuccess < 0 || treatmentSuccess > treatmentN {
		return nil, core.NewSuccessRangeError("treatment", treatmentSuccess, treatmentN)
	}

	n1 := float64(controlN)
	n2 := float64(treatmentN)
	p1 := float64(controlSuccess) / n1
	p2 := float64(treatmentSuccess) / n2
	diff := p2 - p1

	// Unpooled standard error of p2-p1, clamped when both proportions are
	// degenerate (all failures or all successes in both groups).
	se := math.Sqrt(p1*(1-p1)/n1 + p2*(1-p2)/n2)
	if se <= 0 {
		se = abstats.Epsilon
	}
	zStat := diff / se

	dist := distributions.New()
	pValue := dist.ZTestPValue(zStat)
	zCrit := dist.NormalQuantile(1 - cfg.Alpha/2)

	absCI := abstats.Interval{
		Lower: diff - zCrit*se,
		Upper: diff + zCrit*se,
	}

	// Relative uplift and its delta-method interval are undefined for a
	// zero-rate control group.
	deltaRelative := math.NaN()
	relCI := abstats.Interval{Lower: math.NaN(), Upper: math.NaN()}
	if p1 > abstats.Epsilon {
		uplift := diff / p1 * 100
		upliftSE := math.Sqrt(
			(1/(p1*p1))*p2*(1-p2)/n2 +
				(p2*p2/math.Pow(p1, 4))*p1*(1-p1)/n1,
		)
		deltaRelative = uplift
		relCI = abstats.Interval{
			Lower: uplift - zCrit*upliftSE,
			Upper: uplift + zCrit*upliftSE,
		}
	}

	// The normal-approximation power formula needs both proportions strictly
	// inside (0, 1); otherwise no finite requirement exists.
	mss := infiniteSampleSize()
	if p1 > 0 && p1 < 1 && p2 > 0 && p2 < 1 {
		mss = minimumSampleSize(dist, cfg, n1/n2, p1*(1-p1), p2*(1-p2), diff, treatmentN)
	}

	return abstats.NewResult(abstats.Result{
		Test:          abstats.TestProportionsZ,
		MetricFormula: abstats.MetricFormulaString(float64(treatmentSuccess), treatmentN),
		MetricValue:   p2,
		DeltaAbsolute: diff,
		DeltaRelative: deltaRelative,
		PValue:        pValue,
		Statistic:     zStat,
		AbsoluteCI:    absCI,
		RelativeCI:    relCI,
		SampleSize:    mss,
	})
}
