package simulation

import "math"

// Multiplier bounds, kept from the original calibration to avoid extremes.
const (
	minUrgencyMultiplier = 0.2
	maxUrgencyMultiplier = 2.0
)

// UrgencyMultiplier amplifies conversion as time runs out. The result is
// monotonically non-increasing in countdown and clamped to [0.2, 2.0].
// amplification controls the curvature; 0 disables the effect.
func UrgencyMultiplier(countdown, maxCountdown, amplification float64, curve UrgencyCurve) float64 {
	if maxCountdown <= 0 {
		return 1.0
	}
	x := clamp01(countdown / maxCountdown)

	var mult float64
	switch curve {
	case CurveExponential:
		mult = math.Exp(amplification * (1.0 - x))
	default:
		mult = 1.0 + amplification*(1.0-x)
	}
	return clamp(mult, minUrgencyMultiplier, maxUrgencyMultiplier)
}

// EffectiveProbability applies the urgency multiplier to the base rate and
// clamps the result to [0,1]. Pure; any Bernoulli sampling happens in the
// caller with its own seeded source.
func EffectiveProbability(baseRate, countdown, maxCountdown, amplification float64, curve UrgencyCurve) float64 {
	return clamp01(baseRate * UrgencyMultiplier(countdown, maxCountdown, amplification, curve))
}
