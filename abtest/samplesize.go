package abtest

import (
	"math"

	"goabtest/domain/abstats"
	"goabtest/internal/distributions"
)

// minimumSampleSize computes the smallest treatment-group size able to
// detect the observed effect at the configured alpha/power, using the
// normal-approximation power formula with group ratio k = n1/n2:
//
//	n2_min = (z_{1-alpha/2} + z_power)^2 * (varControl/k + varTreatment) / effect^2
//
// A zero effect, an unusable ratio, or a non-finite/non-positive n2_min
// means no finite requirement exists.
func minimumSampleSize(dist *distributions.Distributions, cfg abstats.Config, k, varControl, varTreatment, effect float64, treatmentN int) abstats.SampleSizeReport {
	if k <= 0 {
		return infiniteSampleSize()
	}
	effect = math.Abs(effect)
	if effect <= 0 || math.IsNaN(effect) {
		return infiniteSampleSize()
	}

	zAlpha := dist.NormalQuantile(1 - cfg.Alpha/2)
	zPower := dist.NormalQuantile(cfg.Power)
	n2Min := (zAlpha + zPower) * (zAlpha + zPower) * (varControl/k + varTreatment) / (effect * effect)
	if math.IsNaN(n2Min) || math.IsInf(n2Min, 0) || n2Min <= 0 {
		return infiniteSampleSize()
	}

	required := int(math.Ceil(n2Min))
	return abstats.SampleSizeReport{
		RatioPct: float64(treatmentN) / float64(required) * 100,
		Required: required,
		Finite:   true,
	}
}

func infiniteSampleSize() abstats.SampleSizeReport {
	return abstats.SampleSizeReport{}
}
