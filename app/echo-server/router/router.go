package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/rest"
)

func SetSimulationRoutes(api *echo.Group, handler *rest.SimulationHandler) {
	sims := api.Group("/simulations")

	sims.POST("/compare", handler.Compare)
	sims.POST("/feed-compare", handler.CompareFeed)
}

func SetRunRoutes(api *echo.Group, handler *rest.RunsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	runs := api.Group("/runs")

	runs.GET("", handler.ListRuns)
	runs.GET("/:id", handler.GetRun)
	runs.DELETE("/:id", handler.DeleteRun, authRequired, adminOnly)
}
