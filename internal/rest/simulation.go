package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/config"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/metrics"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	SimulationHandler struct {
		validate *validator.Validate
		service  SimulationService
		defaults config.SimulationConfig
	}

	SimulationService interface {
		Compare(ctx context.Context, cfg simulation.Config, includeRecords bool) (domain.ComparisonResult, error)
		CompareFeed(ctx context.Context, scenario *simulation.Scenario, seed int64) (map[string]domain.MetricsSummary, error)
	}

	// CompareRequest configures a single-drop Random-vs-Thompson run.
	// Optional fields fall back to the engine defaults.
	CompareRequest struct {
		Views         int      `json:"views" validate:"required,gt=0"`
		Stock         int      `json:"stock" validate:"required,gt=0"`
		BaseRate      *float64 `json:"base_rate" validate:"omitempty,gte=0,lte=1"`
		Amplification *float64 `json:"amplification" validate:"omitempty,gte=0"`
		HorizonS      *float64 `json:"horizon_s" validate:"omitempty,gt=0"`
		Schedule      string   `json:"schedule" validate:"omitempty,oneof=linear uniform"`
		Curve         string   `json:"curve" validate:"omitempty,oneof=linear exponential"`
		Seed          *int64   `json:"seed"`
		IssueProb     *float64 `json:"issue_prob" validate:"omitempty,gte=0,lte=1"`
		Threshold     *float64 `json:"threshold" validate:"omitempty,gte=0,lte=1"`

		IncludeRecords bool `json:"include_records"`
	}

	// FeedCompareRequest configures a multi-drop feed comparison, either
	// from a named scenario file or from the built-in default drop set.
	FeedCompareRequest struct {
		Scenario string `json:"scenario" validate:"omitempty,max=64"`
		Users    int    `json:"users" validate:"omitempty,gt=0"`
		HorizonS int    `json:"horizon_s" validate:"omitempty,gt=0"`
		Drops    int    `json:"drops" validate:"omitempty,gt=0,lte=32"`
		Seed     *int64 `json:"seed"`
	}
)

func NewSimulationHandler(svc SimulationService, defaults config.SimulationConfig) *SimulationHandler {
	return &SimulationHandler{
		validate: validator.New(),
		service:  svc,
		defaults: defaults,
	}
}

// POST /api/v1/simulations/compare
func (h *SimulationHandler) Compare(c echo.Context) error {
	started := time.Now()
	metrics.CompareRequests.Inc()
	defer func() {
		metrics.CompareLatency.Observe(time.Since(started).Seconds())
	}()

	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg := h.toConfig(req)

	result, err := h.service.Compare(c.Request().Context(), cfg, req.IncludeRecords)
	if err != nil {
		if isConfigError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/simulations/feed-compare
func (h *SimulationHandler) CompareFeed(c echo.Context) error {
	started := time.Now()
	metrics.CompareRequests.Inc()
	defer func() {
		metrics.CompareLatency.Observe(time.Since(started).Seconds())
	}()

	var req FeedCompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	scenario, err := h.resolveScenario(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	seed := h.defaults.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	summaries, err := h.service.CompareFeed(c.Request().Context(), scenario, seed)
	if err != nil {
		if isConfigError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summaries))
}

func (h *SimulationHandler) toConfig(req CompareRequest) simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Views = req.Views
	cfg.Stock = req.Stock
	if req.BaseRate != nil {
		cfg.BaseRate = *req.BaseRate
	}
	if req.Amplification != nil {
		cfg.Amplification = *req.Amplification
	}
	if req.HorizonS != nil {
		cfg.HorizonS = *req.HorizonS
	}
	if req.Schedule != "" {
		cfg.Schedule = simulation.Schedule(req.Schedule)
	}
	if req.Curve != "" {
		cfg.Curve = simulation.UrgencyCurve(req.Curve)
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	} else {
		cfg.Seed = h.defaults.DefaultSeed
	}
	if req.IssueProb != nil {
		cfg.IssueProb = *req.IssueProb
	}
	if req.Threshold != nil {
		cfg.Threshold = *req.Threshold
	}
	return cfg
}

func (h *SimulationHandler) resolveScenario(req FeedCompareRequest) (*simulation.Scenario, error) {
	if req.Scenario != "" {
		// scenario names map to files inside the configured directory
		if strings.ContainsAny(req.Scenario, `/\.`) {
			return nil, errors.New("invalid scenario name")
		}
		return simulation.LoadScenario(filepath.Join(h.defaults.ScenarioDir, req.Scenario+".yaml"))
	}

	k := h.defaults.DefaultDrops
	if req.Drops > 0 {
		k = req.Drops
	}
	scenario := simulation.DefaultScenario(k)
	if req.Users > 0 {
		scenario.Users = req.Users
	} else {
		scenario.Users = h.defaults.DefaultUsers
	}
	if req.HorizonS > 0 {
		scenario.HorizonS = req.HorizonS
		for i := range scenario.Drops {
			scenario.Drops[i].DurationS = req.HorizonS
		}
	}
	return scenario, nil
}

func isConfigError(err error) bool {
	for _, target := range []error{
		simulation.ErrInvalidViews,
		simulation.ErrInvalidStock,
		simulation.ErrInvalidBaseRate,
		simulation.ErrInvalidAmplification,
		simulation.ErrInvalidHorizon,
		simulation.ErrInvalidIssueProb,
		simulation.ErrInvalidThreshold,
		simulation.ErrInvalidCurve,
		simulation.ErrInvalidSchedule,
		simulation.ErrNoDrops,
		simulation.ErrInvalidUsers,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
