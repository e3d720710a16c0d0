package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomPolicyExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	never := NewRandomPolicy(0.0, rng)
	for i := 0; i < 1000; i++ {
		require.False(t, never.Decide(DecisionContext{}))
	}

	always := NewRandomPolicy(1.0, rng)
	for i := 0; i < 1000; i++ {
		require.True(t, always.Decide(DecisionContext{}))
	}
}

func TestRandomPolicyObserveIsNoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewRandomPolicy(0.5, rng)

	// must not panic or change behavior distribution structurally
	p.Observe(true, true)
	p.Observe(true, false)
	p.Observe(false, false)
	require.Equal(t, PolicyRandom, p.Name())
}

func TestThompsonPosteriorExactCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewThompsonPolicy(0.1, rng)

	alpha, beta := p.Posterior()
	require.Equal(t, 1.0, alpha)
	require.Equal(t, 1.0, beta)

	// k successes, m failures, plus non-issued impressions that must not move
	// the posterior
	const k, m = 7, 13
	for i := 0; i < k; i++ {
		p.Observe(true, true)
	}
	for i := 0; i < m; i++ {
		p.Observe(true, false)
	}
	for i := 0; i < 50; i++ {
		p.Observe(false, false)
	}

	alpha, beta = p.Posterior()
	require.Equal(t, 1.0+float64(k), alpha)
	require.Equal(t, 1.0+float64(m), beta)
}

func TestThompsonDecideThresholdExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// threshold 0: any positive posterior sample issues
	eager := NewThompsonPolicy(0.0, rng)
	issued := 0
	for i := 0; i < 100; i++ {
		if eager.Decide(DecisionContext{}) {
			issued++
		}
	}
	require.Equal(t, 100, issued)

	// threshold 1: a Beta sample can never exceed 1
	frozen := NewThompsonPolicy(1.0, rng)
	for i := 0; i < 100; i++ {
		require.False(t, frozen.Decide(DecisionContext{}))
	}
}

func TestBetaSampleRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		v := betaSample(rng, 1.0, 1.0)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestBetaSampleConcentration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Beta(100, 10) should concentrate well above Beta(10, 100)
	high := 0.0
	low := 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		high += betaSample(rng, 100.0, 10.0)
		low += betaSample(rng, 10.0, 100.0)
	}
	require.Greater(t, high/n, 0.8)
	require.Less(t, low/n, 0.2)
}

func TestGammaSampleSmallShapePositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		require.Greater(t, gammaSample(rng, 0.5), 0.0)
	}
}
