package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/repository/postgres"
)

type stubRunService struct {
	runs []domain.SimulationRun
}

func (s *stubRunService) ListRuns(_ context.Context, limit int) ([]domain.SimulationRun, error) {
	if limit > len(s.runs) {
		limit = len(s.runs)
	}
	return s.runs[:limit], nil
}

func (s *stubRunService) GetRun(_ context.Context, id string) (*domain.SimulationRun, error) {
	for i := range s.runs {
		if s.runs[i].ID == id {
			return &s.runs[i], nil
		}
	}
	return nil, postgres.ErrRunNotFound
}

func (s *stubRunService) DeleteRun(_ context.Context, id string) error {
	for i := range s.runs {
		if s.runs[i].ID == id {
			return nil
		}
	}
	return postgres.ErrRunNotFound
}

func TestListRunsHandler(t *testing.T) {
	h := NewRunsHandler(&stubRunService{runs: []domain.SimulationRun{
		{ID: "a", Policy: "random"},
		{ID: "b", Policy: "thompson"},
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRuns(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRunHandlerNotFound(t *testing.T) {
	h := NewRunsHandler(&stubRunService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetRun(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRunHandler(t *testing.T) {
	h := NewRunsHandler(&stubRunService{runs: []domain.SimulationRun{{ID: "a"}}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a")

	require.NoError(t, h.DeleteRun(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
