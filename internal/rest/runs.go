package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/repository/postgres"
)

type (
	RunsHandler struct {
		service RunHistoryService
	}

	RunHistoryService interface {
		ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error)
		GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
		DeleteRun(ctx context.Context, id string) error
	}
)

func NewRunsHandler(svc RunHistoryService) *RunsHandler {
	return &RunsHandler{service: svc}
}

// GET /api/v1/runs?limit=50
func (h *RunsHandler) ListRuns(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	runs, err := h.service.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return runError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(runs))
}

// GET /api/v1/runs/:id
func (h *RunsHandler) GetRun(c echo.Context) error {
	run, err := h.service.GetRun(c.Request().Context(), c.Param("id"))
	if err != nil {
		return runError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(run))
}

// DELETE /api/v1/runs/:id
func (h *RunsHandler) DeleteRun(c echo.Context) error {
	if err := h.service.DeleteRun(c.Request().Context(), c.Param("id")); err != nil {
		return runError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("run deleted"))
}

func runError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, postgres.ErrRunNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, simulation.ErrHistoryDisabled):
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
