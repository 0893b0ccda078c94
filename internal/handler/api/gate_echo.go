package api

import (
	"errors"
	"time"

	models "TradeGate/internal/domain/models"
	"TradeGate/internal/usecase"
	xhttp "TradeGate/pkg/http"
	xlogger "TradeGate/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Intermediary caches may serve a forecast up to 5 minutes old and revalidate
// stale copies for another 10.
const forecastCacheControl = "public, max-age=300, stale-while-revalidate=600"

var disclaimer = []string{
	"Forecast is informational only and is not financial advice.",
	"Statuses derive from scheduled events; confirm against the live calendar before trading.",
}

// GateEchoHandler exposes the forecast and market-state endpoints.
type GateEchoHandler struct {
	logger  *xlogger.Logger
	planner *usecase.Planner
	state   *usecase.MarketStateService
	routine models.RoutineWindow
}

func NewGateEchoHandler(logger *xlogger.Logger, planner *usecase.Planner, state *usecase.MarketStateService, routine models.RoutineWindow) *GateEchoHandler {
	return &GateEchoHandler{logger: logger, planner: planner, state: state, routine: routine}
}

func (h *GateEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/forecast", h.Forecast)
	g.GET("/market-state", h.MarketState)
	g.POST("/market-state", h.SaveMarketState)
}

func (h *GateEchoHandler) Forecast(c echo.Context) error {
	days, err := h.planner.Plan(c.Request().Context())
	if err != nil {
		h.logger.Error("forecast plan error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, forecastCacheControl)
	return xhttp.OKResponse(c, models.ForecastResponse{
		OK:             true,
		Routine:        h.routine,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Days:           days,
		Disclaimer:     disclaimer,
	})
}

func (h *GateEchoHandler) MarketState(c echo.Context) error {
	value, err := h.state.Load(c.Request().Context())
	if err != nil {
		h.logger.Error("market-state read error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c, "market-state read failed")
	}
	return xhttp.OKResponse(c, models.StateReadResponse{OK: true, Value: value})
}

func (h *GateEchoHandler) SaveMarketState(c echo.Context) error {
	req := &models.StateSubmission{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	saved, err := h.state.Save(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSecretNotConfigured):
			h.logger.Error("market-state write rejected: no secret configured")
			return xhttp.InternalServerErrorResponse(c, "webhook secret not configured")
		case errors.Is(err, usecase.ErrBadSecret):
			return xhttp.UnauthorizedResponse(c, "invalid secret")
		default:
			h.logger.Error("market-state write error", xlogger.Error(err))
			return xhttp.InternalServerErrorResponse(c, "market-state write failed")
		}
	}

	return xhttp.OKResponse(c, models.StateWriteResponse{
		OK:      true,
		Saved:   time.Now().UnixMilli(),
		Payload: *saved,
	})
}
