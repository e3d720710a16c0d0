package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUrgencyMultiplierMonotonicity(t *testing.T) {
	prev := -1.0
	// countdown sweeping from expiry (0) to full horizon: multiplier must
	// never increase as countdown grows
	for countdown := 0.0; countdown <= 900.0; countdown += 30.0 {
		mult := UrgencyMultiplier(countdown, 900.0, 1.25, CurveLinear)
		if prev >= 0 {
			require.LessOrEqual(t, mult, prev, "multiplier increased at countdown=%f", countdown)
		}
		prev = mult
	}
}

func TestUrgencyMultiplierBounds(t *testing.T) {
	for _, curve := range []UrgencyCurve{CurveLinear, CurveExponential} {
		for countdown := 0.0; countdown <= 900.0; countdown += 10.0 {
			mult := UrgencyMultiplier(countdown, 900.0, 5.0, curve)
			require.GreaterOrEqual(t, mult, minUrgencyMultiplier)
			require.LessOrEqual(t, mult, maxUrgencyMultiplier)
		}
	}
}

func TestUrgencyMultiplierZeroHorizon(t *testing.T) {
	require.Equal(t, 1.0, UrgencyMultiplier(10.0, 0.0, 1.25, CurveLinear))
	require.Equal(t, 1.0, UrgencyMultiplier(10.0, -5.0, 1.25, CurveLinear))
}

func TestEffectiveProbabilityClamped(t *testing.T) {
	// high base rate amplified near expiry must still clamp to 1
	p := EffectiveProbability(0.9, 0.0, 900.0, 2.0, CurveLinear)
	require.Equal(t, 1.0, p)

	p = EffectiveProbability(0.0, 0.0, 900.0, 2.0, CurveLinear)
	require.Equal(t, 0.0, p)
}

func TestEffectiveProbabilityAtExpiryBeatsFullCountdown(t *testing.T) {
	for _, curve := range []UrgencyCurve{CurveLinear, CurveExponential} {
		atExpiry := EffectiveProbability(0.1, 0.0, 900.0, 1.25, curve)
		atStart := EffectiveProbability(0.1, 900.0, 900.0, 1.25, curve)
		require.GreaterOrEqual(t, atExpiry, atStart)
	}
}

func TestEffectiveProbabilityDeterministic(t *testing.T) {
	a := EffectiveProbability(0.1, 450.0, 900.0, 1.25, CurveLinear)
	b := EffectiveProbability(0.1, 450.0, 900.0, 1.25, CurveLinear)
	require.Equal(t, a, b)
}

func TestAmplificationZeroIsNeutral(t *testing.T) {
	require.Equal(t, 1.0, UrgencyMultiplier(450.0, 900.0, 0.0, CurveLinear))
	require.Equal(t, 1.0, UrgencyMultiplier(450.0, 900.0, 0.0, CurveExponential))
}
