package http

import (
	"errors"
	"net/http"
	"strconv"

	"courierrank/internal/core/application/usecases/commands"
	"courierrank/internal/core/application/usecases/queries"
	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/services"
	"courierrank/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the ranking engine: the public ranking
// lookup and the token-protected administrative refresh endpoint.
type Server struct {
	getRankingHandler queries.GetCourierRankingQueryHandler
	refreshHandler    commands.RefreshRankingCacheCommandHandler
	adminToken        string
}

// NewServer creates a new HTTP server with the required query and command
// handlers. adminToken guards the refresh endpoint; an empty token disables it.
func NewServer(
	getRankingHandler queries.GetCourierRankingQueryHandler,
	refreshHandler commands.RefreshRankingCacheCommandHandler,
	adminToken string,
) *Server {
	return &Server{
		getRankingHandler: getRankingHandler,
		refreshHandler:    refreshHandler,
		adminToken:        adminToken,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/couriers/ranking", s.GetCourierRanking)
	e.POST("/api/v1/admin/ranking/refresh", s.RefreshRankingCache)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCourierRanking handles GET /api/v1/couriers/ranking - resolves a courier
// ranking for a postal code through the dynamic/fallback cascade.
func (s *Server) GetCourierRanking(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer",
			})
		}
		limit = parsed
	}

	var merchantID *kernel.UUID
	if raw := ctx.QueryParam("merchant_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "merchant_id must be a valid UUID",
			})
		}
		merchantID = &parsed
	}

	includeHistory := services.ParseBoolFlag(ctx.QueryParam("include_history"), false)

	query, err := queries.NewGetCourierRankingQuery(
		ctx.QueryParam("postal_code"),
		limit,
		merchantID,
		ctx.QueryParam("role"),
		includeHistory,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ranking request: " + err.Error(),
		})
	}

	response, err := s.getRankingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid ranking request: " + err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve courier ranking",
		})
	}

	return ctx.JSON(http.StatusOK, toRankingResponse(response))
}

// RefreshRankingCache handles POST /api/v1/admin/ranking/refresh - triggers
// recomputation of the dynamic ranking cache. Requires the X-Admin-Token
// header to match the configured administrative token.
func (s *Server) RefreshRankingCache(ctx echo.Context) error {
	if s.adminToken == "" {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Administrative endpoint is not configured",
		})
	}

	if ctx.Request().Header.Get("X-Admin-Token") != s.adminToken {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid administrative token",
		})
	}

	var request RefreshRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var courierID *kernel.UUID
	if request.CourierID != nil {
		parsed, err := kernel.UUIDFromString(*request.CourierID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "courier_id must be a valid UUID",
			})
		}
		courierID = &parsed
	}

	command, err := commands.NewRefreshRankingCacheCommand(request.PostalArea, courierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid refresh request: " + err.Error(),
		})
	}

	response, err := s.refreshHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Ranking cache refresh failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, toRefreshResponse(response))
}
