package handler

import (
	"log/slog"
	"net/http"
	"time"

	"oilshare/internal/delivery/api/response"
	"oilshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplianceHandlerParams holds dependencies for ComplianceHandler, injected by Fx.
type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Logger       *slog.Logger
}

// ComplianceHandler serves the regulatory records, the dashboard and the directory
type ComplianceHandler struct {
	complianceUC usecase.ComplianceUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// NewComplianceHandler is the constructor for ComplianceHandler
func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUC: params.ComplianceUC,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// GetProfile returns the regulatory profile
func (h *ComplianceHandler) GetProfile(c echo.Context) error {
	profile, err := h.complianceUC.GetProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// GetStatus returns registration, maintenance schedule and checklist completion
func (h *ComplianceHandler) GetStatus(c echo.Context) error {
	status, err := h.complianceUC.GetStatus(c.Request().Context(), h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// ListChecklist returns the regulatory checklist
func (h *ComplianceHandler) ListChecklist(c echo.Context) error {
	items, err := h.complianceUC.ListChecklist(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListWastewaterReports returns the laboratory analyses
func (h *ComplianceHandler) ListWastewaterReports(c echo.Context) error {
	reports, err := h.complianceUC.ListWastewaterReports(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// GetDashboard returns the annual impact summary
func (h *ComplianceHandler) GetDashboard(c echo.Context) error {
	summary, err := h.complianceUC.GetDashboard(c.Request().Context(), h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// GetAuditReport returns the audit diagnosis issued today
func (h *ComplianceHandler) GetAuditReport(c echo.Context) error {
	report, err := h.complianceUC.GetAuditReport(c.Request().Context(), h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// SearchDirectory lists authorized managers matching the q query parameter
func (h *ComplianceHandler) SearchDirectory(c echo.Context) error {
	entries, err := h.complianceUC.SearchDirectory(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
