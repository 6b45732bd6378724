package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"oilshare/internal/delivery/api/response"
	deliverycontext "oilshare/internal/delivery/context"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/usecase"
	"oilshare/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const certificateFormField = "file"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves monthly disposal reports and their certificates
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// UpdateAmountRequest represents the request body for a manual amount override
type UpdateAmountRequest struct {
	AmountKg *float64 `json:"amount_kg" validate:"required,gte=0"`
}

// VerifyCertificateRequest represents the scanned QR payload
type VerifyCertificateRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ListReports returns the reports of every tracked month
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUC.ListReports(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// GetReport returns the report of one month
func (h *ReportHandler) GetReport(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.GetReport(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// UploadCertificate registers a disposal certificate sent as multipart form data
// with a "file" part and an "amount_kg" field.
func (h *ReportHandler) UploadCertificate(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("amount_kg")), 64)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("amount_kg must be a number"))
	}

	fileHeader, err := c.FormFile(certificateFormField)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Certificate file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open certificate upload")
	}
	defer file.Close()

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Certificate upload received",
		slog.Int("month_index", month),
		slog.String("file_name", fileHeader.Filename),
		slog.String("size", util.FormatBytes(fileHeader.Size)),
	)

	report, err := h.reportUC.RegisterCertificate(ctx, &usecase.CertificateUpload{
		MonthIndex: month,
		AmountKg:   amount,
		FileName:   fileHeader.Filename,
		Content:    file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Certificate registered")
}

// UpdateAmount overrides the logged amount of a month
func (h *ReportHandler) UpdateAmount(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAmountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.UpdateAmount(c.Request().Context(), month, *req.AmountKg)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Amount updated")
}

// SimulateExtraction reads the amount from an uploaded certificate. The document itself is discarded.
func (h *ReportHandler) SimulateExtraction(c echo.Context) error {
	fileName := c.FormValue("file_name")
	if fileHeader, err := c.FormFile(certificateFormField); err == nil {
		fileName = fileHeader.Filename
	}

	if strings.TrimSpace(fileName) == "" {
		return response.BindingError(c, "INVALID_INPUT", "Certificate file is required")
	}

	result, err := h.reportUC.SimulateExtraction(c.Request().Context(), fileName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CertificateQR returns the certificate QR code of a month as PNG
func (h *ReportHandler) CertificateQR(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.reportUC.CertificateQR(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyCertificate checks a scanned certificate QR against the stored report
func (h *ReportHandler) VerifyCertificate(c echo.Context) error {
	var req VerifyCertificateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.reportUC.VerifyCertificate(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

func monthParam(c echo.Context) (int, error) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, domainerrors.ErrInvalidMonth.WithDetails(c.Param("month"))
	}

	return month, nil
}
