package abtest

import (
	"math"

	"goabtest/domain/abstats"
	"goabtest/domain/core"
	"goabtest/internal/distributions"
	"goabtest/internal/samples"
)

// TTestIndWelch performs Welch's unequal-variance t-test for the difference
// of two independent means. It takes raw observation lists for the control
// and treatment groups, drops NaN entries per group, and reduces each group
// to mean/variance/count internally. Degrees of freedom follow the
// Welch-Satterthwaite equation; when both groups are constant the df is
// undefined and p-value and confidence intervals are reported as NaN.
func TTestIndWelch(controlValues, treatmentValues []float64, cfg abstats.Config) (*abstats.Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	x := samples.DropMissing(controlValues)
	y := samples.DropMissing(treatmentValues)
	if len(x) < 2 || len(y) < 2 {
		return nil, core.NewObservationCountError(len(x), len(y))
	}

	control, err := samples.Describe(x)
	if err != nil {
		return nil, err
	}
	treatment, err := samples.Describe(y)
	if err != nil {
		return nil, err
	}

	n1 := float64(control.N)
	n2 := float64(treatment.N)
	diff := treatment.Mean - control.Mean

	se := math.Sqrt(control.Variance/n1 + treatment.Variance/n2)
	if se <= 0 {
		se = abstats.Epsilon
	}
	tStat := diff / se

	// Welch-Satterthwaite degrees of freedom. A zero denominator means both
	// groups have zero variance and the test is meaningless.
	numDF := math.Pow(control.Variance/n1+treatment.Variance/n2, 2)
	denDF := math.Pow(control.Variance/n1, 2)/(n1-1) + math.Pow(treatment.Variance/n2, 2)/(n2-1)
	df := math.NaN()
	if denDF > 0 {
		df = numDF / denDF
	}

	dist := distributions.New()
	pValue := math.NaN()
	tCrit := math.NaN()
	if !math.IsNaN(df) && !math.IsInf(df, 0) && df > 0 {
		pValue = dist.TTestPValue(tStat, df)
		tCrit = dist.TQuantile(1-cfg.Alpha/2, df)
	}

	absCI := abstats.Interval{
		Lower: diff - tCrit*se,
		Upper: diff + tCrit*se,
	}

	deltaRelative := math.NaN()
	relCI := abstats.Interval{Lower: math.NaN(), Upper: math.NaN()}
	if math.Abs(control.Mean) > abstats.Epsilon {
		uplift := diff / control.Mean * 100
		// Delta-method standard error for the percentage uplift. The clamp
		// keeps both denominators consistent near zero.
		m := math.Max(math.Abs(control.Mean), abstats.Epsilon)
		upliftSE := math.Sqrt(
			(1/(m*m))*treatment.Variance/n2 +
				(treatment.Mean*treatment.Mean/math.Pow(m, 4))*control.Variance/n1,
		)
		deltaRelative = uplift
		relCI = abstats.Interval{
			Lower: uplift - tCrit*upliftSE,
			Upper: uplift + tCrit*upliftSE,
		}
	}

	mss := minimumSampleSize(dist, cfg, n1/n2, control.Variance, treatment.Variance, diff, treatment.N)

	return abstats.NewResult(abstats.Result{
		Test:          abstats.TestWelchT,
		MetricFormula: abstats.MetricFormulaString(treatment.Sum, treatment.N),
		MetricValue:   treatment.Mean,
		DeltaAbsolute: diff,
		DeltaRelative: deltaRelative,
		PValue:        pValue,
		Statistic:     tStat,
		DF:            df,
		AbsoluteCI:    absCI,
		RelativeCI:    relCI,
		SampleSize:    mss,
	})
}
