package simulation

import (
	"math/rand"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// Policy names, also used as map keys in comparison results.
const (
	PolicyRandom   = "random"
	PolicyThompson = "thompson"
)

// DecisionContext is everything a policy may look at for one impression.
// Stock is informational: the driver, not the policy, is the authority on
// whether a token can actually be spent.
type DecisionContext struct {
	Impression     domain.Impression
	MaxCountdown   float64
	StockRemaining int
}

// Policy decides whether an impression is worth a token and learns from the
// observed outcome. Decide is never called once stock is exhausted; the
// driver enforces that externally.
type Policy interface {
	Name() string
	Decide(dc DecisionContext) bool
	Observe(issued, converted bool)
}

// RandomPolicy issues tokens on an independent coin flip and learns nothing.
type RandomPolicy struct {
	p   float64
	rng *rand.Rand
}

func NewRandomPolicy(p float64, rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{p: clamp01(p), rng: rng}
}

func (r *RandomPolicy) Name() string { return PolicyRandom }

func (r *RandomPolicy) Decide(DecisionContext) bool {
	return r.rng.Float64() < r.p
}

func (r *RandomPolicy) Observe(issued, converted bool) {}

// ThompsonPolicy keeps a Beta-Bernoulli posterior over the conversion rate.
// Decide samples the posterior and spends stock when the sample clears the
// threshold; Observe moves the posterior only for impressions that actually
// got a token.
type ThompsonPolicy struct {
	alpha, beta float64
	threshold   float64
	rng         *rand.Rand
}

func NewThompsonPolicy(threshold float64, rng *rand.Rand) *ThompsonPolicy {
	return &ThompsonPolicy{
		alpha:     1.0,
		beta:      1.0,
		threshold: clamp01(threshold),
		rng:       rng,
	}
}

func (t *ThompsonPolicy) Name() string { return PolicyThompson }

func (t *ThompsonPolicy) Decide(DecisionContext) bool {
	return betaSample(t.rng, t.alpha, t.beta) > t.threshold
}

func (t *ThompsonPolicy) Observe(issued, converted bool) {
	if !issued {
		return
	}
	if converted {
		t.alpha += 1.0
	} else {
		t.beta += 1.0
	}
}

// Posterior exposes the current Beta shape parameters.
func (t *ThompsonPolicy) Posterior() (alpha, beta float64) {
	return t.alpha, t.beta
}
