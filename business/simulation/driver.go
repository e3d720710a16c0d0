package simulation

import (
	"math/rand"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// Run folds the impression stream through the policy, one impression at a
// time, in stream order. The stock counter is the single hard constraint:
// once it hits zero the policy is bypassed and no further token is issued.
//
// The run is deterministic given the seeded rng. Misconfiguration is the
// only failure mode and is reported before the first impression.
func Run(stream *Stream, policy Policy, cfg Config, rng *rand.Rand) ([]domain.OutcomeRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stock := cfg.Stock
	records := make([]domain.OutcomeRecord, 0, stream.Views())

	stream.Reset()
	for {
		imp, ok := stream.Next()
		if !ok {
			break
		}

		issued := false
		if stock > 0 {
			issued = policy.Decide(DecisionContext{
				Impression:     imp,
				MaxCountdown:   stream.MaxCountdown(),
				StockRemaining: stock,
			})
		}

		converted := false
		if issued {
			stock--
			p := EffectiveProbability(cfg.BaseRate, imp.Countdown, stream.MaxCountdown(), cfg.Amplification, cfg.Curve)
			converted = rng.Float64() < p
		}

		policy.Observe(issued, converted)

		records = append(records, domain.OutcomeRecord{
			Index:          imp.Index,
			Issued:         issued,
			Converted:      converted,
			StockRemaining: stock,
		})
	}

	return records, nil
}
