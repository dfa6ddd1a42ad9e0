// Package distributions provides unified access to the statistical
// distributions both tests depend on: the standard normal and Student's t.
package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides normal and Student's-t CDF/quantile evaluation
type Distributions struct{}

// New creates a new distributions utility
func New() *Distributions {
	return &Distributions{}
}

// NormalCDF computes the cumulative distribution function for the standard normal
func (d *Distributions) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the quantile function for the standard normal (inverse CDF)
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// TCDF computes the cumulative distribution function for Student's t with df degrees of freedom
func (d *Distributions) TCDF(x, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.CDF(x)
}

// TQuantile computes the Student's-t quantile with df degrees of freedom
func (d *Distributions) TQuantile(p, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(p)
}

// ZTestPValue computes the two-sided p-value for a z statistic
func (d *Distributions) ZTestPValue(z float64) float64 {
	return 2 * (1 - d.NormalCDF(math.Abs(z)))
}

// TTestPValue computes the two-sided p-value for a t statistic. Degrees of
// freedom that are non-finite or <= 0 make the test meaningless, reported
// in-band as NaN.
func (d *Distributions) TTestPValue(t, df float64) float64 {
	if math.IsNaN(df) || math.IsInf(df, 0) || df <= 0 {
		return math.NaN()
	}
	return 2 * (1 - d.TCDF(math.Abs(t), df))
}
