package handler

import (
	"context"
	"log/slog"
	"net/http"

	"oilshare/internal/delivery/api/response"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LogisticsHandlerParams holds dependencies for LogisticsHandler, injected by Fx.
type LogisticsHandlerParams struct {
	fx.In

	LogisticsUC usecase.LogisticsUsecase
	Logger      *slog.Logger
}

// LogisticsHandler serves the generator registry and the shared collection calculator
type LogisticsHandler struct {
	logisticsUC usecase.LogisticsUsecase
	logger      *slog.Logger
}

// NewLogisticsHandler is the constructor for LogisticsHandler
func NewLogisticsHandler(params LogisticsHandlerParams) *LogisticsHandler {
	return &LogisticsHandler{
		logisticsUC: params.LogisticsUC,
		logger:      params.Logger,
	}
}

// EstimateRequest represents the request body for a stateless estimate
type EstimateRequest struct {
	GeneratorIDs []string `json:"generator_ids" validate:"dive,required"`
}

// ToggleGeneratorRequest represents the request body for toggling a generator
type ToggleGeneratorRequest struct {
	GeneratorID string `json:"generator_id" validate:"required"`
}

// ListGenerators returns the generator registry
func (h *LogisticsHandler) ListGenerators(c echo.Context) error {
	generators, err := h.logisticsUC.ListGenerators(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, generators, "")
}

// Estimate computes the outcome for self plus the requested generators
func (h *LogisticsHandler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estimate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	outcome, err := h.logisticsUC.Estimate(c.Request().Context(), req.GeneratorIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome, "")
}

// CreateSession starts a selection containing only self
func (h *LogisticsHandler) CreateSession(c echo.Context) error {
	session, err := h.logisticsUC.CreateSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session, "Session created")
}

// GetSession returns a session and its outcome
func (h *LogisticsHandler) GetSession(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	session, err := h.logisticsUC.GetSession(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// DeleteSession discards a session
func (h *LogisticsHandler) DeleteSession(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	if err := h.logisticsUC.DeleteSession(ctx, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Session deleted")
}

// ToggleGenerator flips a generator in or out of the session selection
func (h *LogisticsHandler) ToggleGenerator(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	var req ToggleGeneratorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.logisticsUC.ToggleGenerator(ctx, sessionID, req.GeneratorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ResetSession restores the selection to self only
func (h *LogisticsHandler) ResetSession(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	session, err := h.logisticsUC.ResetSession(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Selection reset")
}

// PreviewRoute returns the route preview of the session selection
func (h *LogisticsHandler) PreviewRoute(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	preview, err := h.logisticsUC.PreviewRoute(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview, "")
}

// RequestCollection asks the dispatcher for a shared pickup
func (h *LogisticsHandler) RequestCollection(c echo.Context) error {
	ctx, sessionID, ok := h.sessionContext(c)
	if !ok {
		return invalidSessionID(c)
	}

	request, err := h.logisticsUC.RequestCollection(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, request, "Collection requested")
}

// sessionContext parses the :id path param and tags the request logger with it
func (h *LogisticsHandler) sessionContext(c echo.Context) (context.Context, uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, false
	}

	ctx := deliverycontext.WithLogAttrs(c.Request().Context(), h.logger, slog.String("session_id", sessionID.String()))

	return ctx, sessionID, true
}

func invalidSessionID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_SESSION_ID", "Session id must be a UUID")
}
