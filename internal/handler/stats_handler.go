package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/errors"
	"bistro/internal/service"
)

// StatsHandler handles analytics endpoints.
type StatsHandler struct {
	svc service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// AdminStats godoc
// @Summary Summary counts and total revenue over the payment ledger
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to compute stats",
			Code:  "STATS_FAILED",
		})
	}
	return c.JSON(http.StatusOK, summary)
}

// OrderStats godoc
// @Summary Order quantity and revenue grouped by catalog category
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CategoryStat
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /order-stats [get]
func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.svc.OrdersByCategory(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to compute order stats",
			Code:  "STATS_FAILED",
		})
	}
	return c.JSON(http.StatusOK, stats)
}
