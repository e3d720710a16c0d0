package simulation

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// The feed mode simulates a drop feed with K concurrent drops: each user
// arriving over the horizon sees every drop that still has stock and the
// policy picks which one to show. In this run a token counts as a
// redemption in the same step; separating the two is left to later runs.

// FeedConfig parametrises one feed simulation.
type FeedConfig struct {
	Users         int          `json:"users"`
	HorizonS      int          `json:"horizon_s"`
	Seed          int64        `json:"seed"`
	Amplification float64      `json:"amplification"`
	Curve         UrgencyCurve `json:"curve"`
}

func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Users:         500,
		HorizonS:      defaultHorizonS,
		Seed:          42,
		Amplification: defaultAmplification,
		Curve:         CurveLinear,
	}
}

func (c FeedConfig) Validate() error {
	if c.Users <= 0 {
		return ErrInvalidUsers
	}
	if c.HorizonS <= 0 {
		return ErrInvalidHorizon
	}
	if c.Amplification < 0 {
		return ErrInvalidAmplification
	}
	return nil
}

func validateDrops(drops []domain.Drop) error {
	if len(drops) == 0 {
		return ErrNoDrops
	}
	for _, d := range drops {
		if d.Stock <= 0 {
			return ErrInvalidStock
		}
		if d.BaseRate < 0 || d.BaseRate > 1 {
			return ErrInvalidBaseRate
		}
		if d.DurationS <= 0 {
			return ErrInvalidHorizon
		}
	}
	return nil
}

// FeedPolicy picks one drop out of the in-stock candidates.
// Select receives positions into the candidate slice; Update is keyed by the
// absolute drop index so belief state survives drops going out of stock.
type FeedPolicy interface {
	Name() string
	Select(candidates []int, rng *rand.Rand) int
	Update(drop int, success bool)
}

// UniformFeedPolicy picks uniformly among in-stock drops.
type UniformFeedPolicy struct{}

func (UniformFeedPolicy) Name() string { return PolicyRandom }

func (UniformFeedPolicy) Select(candidates []int, rng *rand.Rand) int {
	return rng.Intn(len(candidates))
}

func (UniformFeedPolicy) Update(int, bool) {}

// ThompsonFeedPolicy keeps an independent Beta-Bernoulli posterior per drop
// and shows the drop with the highest posterior sample.
type ThompsonFeedPolicy struct {
	alpha []float64
	beta  []float64
}

func NewThompsonFeedPolicy(k int) *ThompsonFeedPolicy {
	p := &ThompsonFeedPolicy{
		alpha: make([]float64, k),
		beta:  make([]float64, k),
	}
	for i := 0; i < k; i++ {
		p.alpha[i] = 1.0
		p.beta[i] = 1.0
	}
	return p
}

func (t *ThompsonFeedPolicy) Name() string { return PolicyThompson }

func (t *ThompsonFeedPolicy) Select(candidates []int, rng *rand.Rand) int {
	best := 0
	bestVal := -1.0
	for pos, idx := range candidates {
		v := betaSample(rng, t.alpha[idx], t.beta[idx])
		if v > bestVal {
			bestVal = v
			best = pos
		}
	}
	return best
}

func (t *ThompsonFeedPolicy) Update(drop int, success bool) {
	if success {
		t.alpha[drop] += 1.0
	} else {
		t.beta[drop] += 1.0
	}
}

// Posterior exposes the Beta shape parameters for one drop.
func (t *ThompsonFeedPolicy) Posterior(drop int) (alpha, beta float64) {
	return t.alpha[drop], t.beta[drop]
}

// SimulateFeed runs one feed simulation. The drops slice is mutated in
// place (Sold, Redemptions, Stock); callers wanting a pristine scenario
// should pass a copy, as CompareFeedPolicies does.
func SimulateFeed(drops []domain.Drop, cfg FeedConfig, policy FeedPolicy) (domain.MetricsSummary, error) {
	if err := cfg.Validate(); err != nil {
		return domain.MetricsSummary{}, err
	}
	if err := validateDrops(drops); err != nil {
		return domain.MetricsSummary{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	arrivals := make([]int, cfg.Users)
	for i := range arrivals {
		arrivals[i] = rng.Intn(cfg.HorizonS)
	}
	sort.Ints(arrivals)

	views := 0
	tokens := 0
	redemptions := 0

	candidates := make([]int, 0, len(drops))
	for _, t := range arrivals {
		candidates = candidates[:0]
		for i := range drops {
			if drops[i].Stock > 0 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pos := policy.Select(candidates, rng)
		i := candidates[pos]
		d := &drops[i]
		views++

		tRemaining := d.DurationS - t
		if tRemaining < 0 {
			tRemaining = 0
		}
		p := EffectiveProbability(d.BaseRate, float64(tRemaining), float64(d.DurationS), cfg.Amplification, cfg.Curve)

		if rng.Float64() < p {
			tokens++
			d.Stock--
			d.Sold++
			// token ~ redemption in this run
			redemptions++
			d.Redemptions++
			policy.Update(i, true)
		} else {
			policy.Update(i, false)
		}
	}

	initialStock := 0
	for _, d := range drops {
		initialStock += d.Stock + d.Sold
	}

	s := domain.MetricsSummary{
		Views:       views,
		Tokens:      tokens,
		Redemptions: redemptions,
	}
	if views > 0 {
		s.CTR = float64(tokens) / float64(views)
	}
	if tokens > 0 {
		s.ConversionGivenToken = float64(redemptions) / float64(tokens)
	}
	if initialStock > 0 {
		s.UtilizationStock = float64(tokens) / float64(initialStock)
	}
	return s, nil
}

// CompareFeedPolicies runs Random and Thompson over fresh copies of the
// same drop set and returns one summary per policy.
func CompareFeedPolicies(drops []domain.Drop, cfg FeedConfig) (map[string]domain.MetricsSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateDrops(drops); err != nil {
		return nil, err
	}

	out := make(map[string]domain.MetricsSummary, 2)

	randomDrops := cloneDrops(drops)
	randomSummary, err := SimulateFeed(randomDrops, cfg, UniformFeedPolicy{})
	if err != nil {
		return nil, err
	}
	out[PolicyRandom] = randomSummary

	thompsonDrops := cloneDrops(drops)
	thompsonSummary, err := SimulateFeed(thompsonDrops, cfg, NewThompsonFeedPolicy(len(drops)))
	if err != nil {
		return nil, err
	}
	out[PolicyThompson] = thompsonSummary

	return out, nil
}

// DefaultDrops builds a small drop set with staggered base rates and
// identical stock/duration, cycling the defaults when k is large.
func DefaultDrops(k, stock, durationS int) []domain.Drop {
	baseRates := []float64{0.06, 0.10, 0.14, 0.08, 0.12, 0.05}
	drops := make([]domain.Drop, k)
	for i := 0; i < k; i++ {
		drops[i] = domain.Drop{
			Name:      fmt.Sprintf("Drop %d", i+1),
			BaseRate:  baseRates[i%len(baseRates)],
			Stock:     stock,
			DurationS: durationS,
		}
	}
	return drops
}

func cloneDrops(drops []domain.Drop) []domain.Drop {
	out := make([]domain.Drop, len(drops))
	copy(out, drops)
	return out
}
