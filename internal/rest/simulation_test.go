package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/config"
)

type stubSimService struct {
	lastCfg      simulation.Config
	lastScenario *simulation.Scenario
	err          error
}

func (s *stubSimService) Compare(_ context.Context, cfg simulation.Config, _ bool) (domain.ComparisonResult, error) {
	s.lastCfg = cfg
	if s.err != nil {
		return domain.ComparisonResult{}, s.err
	}
	return domain.ComparisonResult{
		Summaries: map[string]domain.MetricsSummary{
			simulation.PolicyRandom:   {Views: cfg.Views},
			simulation.PolicyThompson: {Views: cfg.Views},
		},
	}, nil
}

func (s *stubSimService) CompareFeed(_ context.Context, scenario *simulation.Scenario, _ int64) (map[string]domain.MetricsSummary, error) {
	s.lastScenario = scenario
	if s.err != nil {
		return nil, s.err
	}
	return map[string]domain.MetricsSummary{
		simulation.PolicyRandom:   {},
		simulation.PolicyThompson: {},
	}, nil
}

func testDefaults() config.SimulationConfig {
	return config.SimulationConfig{
		DefaultUsers:    1000,
		DefaultHorizonS: 900,
		DefaultDrops:    3,
		DefaultSeed:     42,
		ScenarioDir:     "scenarios",
	}
}

func doRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestCompareHandlerOK(t *testing.T) {
	svc := &stubSimService{}
	h := NewSimulationHandler(svc, testDefaults())

	rec := doRequest(t, h.Compare, `{"views":100,"stock":10,"base_rate":0.2,"amplification":2.0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 100, svc.lastCfg.Views)
	require.Equal(t, 10, svc.lastCfg.Stock)
	require.Equal(t, 0.2, svc.lastCfg.BaseRate)
	require.Equal(t, int64(42), svc.lastCfg.Seed, "seed defaults from config")
}

func TestCompareHandlerValidation(t *testing.T) {
	h := NewSimulationHandler(&stubSimService{}, testDefaults())

	// missing required fields
	rec := doRequest(t, h.Compare, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// base rate out of range
	rec = doRequest(t, h.Compare, `{"views":100,"stock":10,"base_rate":1.5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed body
	rec = doRequest(t, h.Compare, `{"views":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareHandlerMapsConfigErrors(t *testing.T) {
	svc := &stubSimService{err: simulation.ErrInvalidStock}
	h := NewSimulationHandler(svc, testDefaults())

	rec := doRequest(t, h.Compare, `{"views":100,"stock":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedCompareHandlerDefaults(t *testing.T) {
	svc := &stubSimService{}
	h := NewSimulationHandler(svc, testDefaults())

	rec := doRequest(t, h.CompareFeed, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastScenario)
	require.Equal(t, 3, len(svc.lastScenario.Drops))
	require.Equal(t, 1000, svc.lastScenario.Users)
}

func TestFeedCompareHandlerRejectsScenarioTraversal(t *testing.T) {
	h := NewSimulationHandler(&stubSimService{}, testDefaults())

	rec := doRequest(t, h.CompareFeed, `{"scenario":"../etc/passwd"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
