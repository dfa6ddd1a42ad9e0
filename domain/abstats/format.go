package abstats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Legacy display surface. The numeric Result fields are the source of
// truth; these methods reproduce the historical one-row report strings,
// including the literal "nan" and infinity placeholders.

const infiniteMSS = "0.0% (∞)"

// CIAbsolute renders the confidence interval for the absolute difference
// with 4 decimals, e.g. "[0.0026, 0.0374]".
func (r *Result) CIAbsolute() string {
	return fmt.Sprintf("[%s, %s]", formatFixed(r.AbsoluteCI.Lower, 4), formatFixed(r.AbsoluteCI.Upper, 4))
}

// CIRelative renders the confidence interval for the percentage uplift with
// 2 decimals, or the "[nan%, nan%]" placeholder when the uplift is undefined.
func (r *Result) CIRelative() string {
	return fmt.Sprintf("[%s%%, %s%%]", formatFixed(r.RelativeCI.Lower, 2), formatFixed(r.RelativeCI.Upper, 2))
}

// MSS renders sample-size adequacy as "<achieved>% (<required>)", with the
// requirement thousands-grouped, or "0.0% (∞)" when no finite minimum exists.
func (r *Result) MSS() string {
	if !r.SampleSize.Finite {
		return infiniteMSS
	}
	return fmt.Sprintf("%.1f%% (%s)", r.SampleSize.RatioPct, groupThousands(r.SampleSize.Required))
}

// String renders the full one-row record for logs and quick inspection
func (r *Result) String() string {
	s := fmt.Sprintf("%s: metric=%s value=%g delta_abs=%g delta_rel=%s p=%s stat=%.2f CI_abs=%s CI_rel=%s MSS=%s",
		r.Test, r.MetricFormula, r.MetricValue, r.DeltaAbsolute,
		formatFixed(r.DeltaRelative, 2), formatFixed(r.PValue, 5), r.Statistic,
		r.CIAbsolute(), r.CIRelative(), r.MSS())
	if r.Test == TestWelchT {
		s += fmt.Sprintf(" df=%s", formatFixed(r.DF, 2))
	}
	return s
}

// MetricFormulaString renders the treatment numerator over its sample count.
// The numerator is truncated toward zero for display; the underlying value
// keeps full precision.
func MetricFormulaString(numerator float64, n int) string {
	return fmt.Sprintf("%d/%d", int64(numerator), n)
}

// formatFixed is fmt's %.Nf with NaN spelled "nan" (the legacy token)
func formatFixed(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// groupThousands formats a non-negative integer with comma separators
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
