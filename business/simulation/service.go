package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/logger"
)

// ---- Repository interfaces ----

type RunRepository interface {
	SaveRun(ctx context.Context, run domain.SimulationRun) error
	ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error)
	GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
	DeleteRun(ctx context.Context, id string) error
}

// ComparisonCache is a short-lived cache of comparison summaries keyed by
// their parameters, so a dashboard polling the same settings does not
// re-run the simulation.
type ComparisonCache interface {
	GetComparison(ctx context.Context, key string) (map[string]domain.MetricsSummary, bool, error)
	SetComparison(ctx context.Context, key string, summaries map[string]domain.MetricsSummary, ttl time.Duration) error
}

const cacheTTL = 5 * time.Minute

// ---- Usecase / Service ----

// Service orchestrates simulation runs: it executes comparisons, persists
// run-level history for the dashboard and keeps counters up to date. The
// cache and run repository are optional; with both nil the service is a
// pure in-memory comparison engine.
type Service struct {
	runRepo RunRepository
	cache   ComparisonCache
}

func NewService(runRepo RunRepository, cache ComparisonCache) *Service {
	return &Service{
		runRepo: runRepo,
		cache:   cache,
	}
}

// Compare runs the single-drop Random-vs-Thompson comparison. Records are
// included in the result only when includeRecords is set; cached results
// never carry records.
func (s *Service) Compare(ctx context.Context, cfg Config, includeRecords bool) (domain.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ComparisonResult{}, fmt.Errorf("context error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ComparisonResult{}, err
	}

	tid := TraceIDFromContext(ctx)
	key := compareCacheKey(cfg)

	if s.cache != nil && !includeRecords {
		if summaries, ok, err := s.cache.GetComparison(ctx, key); err == nil && ok {
			logger.Debug("comparison cache hit", "trace_id", tid, "key", key)
			return domain.ComparisonResult{Summaries: summaries}, nil
		}
	}

	result, err := RunComparison(cfg)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	ComparisonsTotal.WithLabelValues("single", "single-drop").Inc()
	for policy, summary := range result.Summaries {
		TokensIssuedTotal.WithLabelValues(policy).Add(float64(summary.Tokens))
	}

	logger.Info("comparison complete",
		"trace_id", tid,
		"views", cfg.Views,
		"stock", cfg.Stock,
		"seed", cfg.Seed,
		"random_ctr", result.Summaries[PolicyRandom].CTR,
		"thompson_ctr", result.Summaries[PolicyThompson].CTR,
	)

	if s.runRepo != nil {
		params := datatypes.JSONMap{
			"views":         cfg.Views,
			"stock":         cfg.Stock,
			"base_rate":     cfg.BaseRate,
			"amplification": cfg.Amplification,
			"horizon_s":     cfg.HorizonS,
			"curve":         string(cfg.Curve),
			"schedule":      string(cfg.Schedule),
		}
		for policy, summary := range result.Summaries {
			run := newRun("single-drop", policy, cfg.Seed, summary, params)
			if err := s.runRepo.SaveRun(ctx, run); err != nil {
				logger.Error("save run failed", "trace_id", tid, "policy", policy, "error", err)
			}
		}
	}

	if s.cache != nil {
		if err := s.cache.SetComparison(ctx, key, result.Summaries, cacheTTL); err != nil {
			logger.Warn("comparison cache write failed", "trace_id", tid, "error", err)
		}
	}

	if !includeRecords {
		result.Records = nil
	}
	return result, nil
}

// CompareFeed runs the multi-drop feed comparison over the given scenario.
func (s *Service) CompareFeed(ctx context.Context, scenario *Scenario, seed int64) (map[string]domain.MetricsSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	tid := TraceIDFromContext(ctx)
	cfg := scenario.FeedConfig(seed)

	summaries, err := CompareFeedPolicies(scenario.Drops, cfg)
	if err != nil {
		return nil, err
	}

	ComparisonsTotal.WithLabelValues("feed", scenario.Name).Inc()
	for policy, summary := range summaries {
		TokensIssuedTotal.WithLabelValues(policy).Add(float64(summary.Tokens))
	}

	logger.Info("feed comparison complete",
		"trace_id", tid,
		"scenario", scenario.Name,
		"users", cfg.Users,
		"drops", len(scenario.Drops),
		"seed", seed,
	)

	if s.runRepo != nil {
		params := datatypes.JSONMap{
			"users":         cfg.Users,
			"horizon_s":     cfg.HorizonS,
			"drops":         len(scenario.Drops),
			"amplification": cfg.Amplification,
			"curve":         string(cfg.Curve),
		}
		for policy, summary := range summaries {
			run := newRun(scenario.Name, policy, seed, summary, params)
			if err := s.runRepo.SaveRun(ctx, run); err != nil {
				logger.Error("save run failed", "trace_id", tid, "policy", policy, "error", err)
			}
		}
	}

	return summaries, nil
}

// ---- run history passthrough ----

var ErrHistoryDisabled = errors.New("run history is not configured")

func (s *Service) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	if s.runRepo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 50
	}
	return s.runRepo.ListRuns(ctx, limit)
}

func (s *Service) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	if s.runRepo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.runRepo.GetRun(ctx, id)
}

func (s *Service) DeleteRun(ctx context.Context, id string) error {
	if s.runRepo == nil {
		return ErrHistoryDisabled
	}
	return s.runRepo.DeleteRun(ctx, id)
}

func newRun(scenario, policy string, seed int64, summary domain.MetricsSummary, params datatypes.JSONMap) domain.SimulationRun {
	return domain.SimulationRun{
		ID:                   uuid.NewString(),
		Scenario:             scenario,
		Policy:               policy,
		Seed:                 seed,
		Views:                summary.Views,
		Tokens:               summary.Tokens,
		Redemptions:          summary.Redemptions,
		CTR:                  summary.CTR,
		ConversionGivenToken: summary.ConversionGivenToken,
		UtilizationStock:     summary.UtilizationStock,
		Params:               params,
	}
}

func compareCacheKey(cfg Config) string {
	return fmt.Sprintf("compare:v%d:s%d:b%.4f:a%.4f:h%.0f:%s:%s:seed%d:p%.4f:t%.4f",
		cfg.Views, cfg.Stock, cfg.BaseRate, cfg.Amplification, cfg.HorizonS,
		cfg.Schedule, cfg.Curve, cfg.Seed, cfg.IssueProb, cfg.Threshold)
}
