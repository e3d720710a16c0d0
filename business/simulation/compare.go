package simulation

import (
	"fmt"
	"math/rand"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// RunComparison runs Random and Thompson over identically generated
// impression streams and returns one summary (and record sequence) per
// policy. The two runs are fully independent: separate stock counters,
// separate belief state, separate rand sources seeded from the same seed.
func RunComparison(cfg Config) (domain.ComparisonResult, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ComparisonResult{}, err
	}

	result := domain.ComparisonResult{
		Summaries: make(map[string]domain.MetricsSummary, 2),
		Records:   make(map[string][]domain.OutcomeRecord, 2),
	}

	policies := []func(rng *rand.Rand) Policy{
		func(rng *rand.Rand) Policy { return NewRandomPolicy(cfg.IssueProb, rng) },
		func(rng *rand.Rand) Policy { return NewThompsonPolicy(cfg.Threshold, rng) },
	}

	for _, newPolicy := range policies {
		stream, err := NewStream(cfg.Views, cfg.HorizonS, cfg.Schedule, cfg.Seed)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("build impression stream: %w", err)
		}

		rng := rand.New(rand.NewSource(cfg.Seed))
		policy := newPolicy(rng)

		records, err := Run(stream, policy, cfg, rng)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("run %s policy: %w", policy.Name(), err)
		}

		result.Summaries[policy.Name()] = Summarize(records, cfg.Views, cfg.Stock)
		result.Records[policy.Name()] = records
	}

	return result, nil
}
