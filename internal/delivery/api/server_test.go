package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oilshare/config"
	"oilshare/internal/delivery/api/response"
	"oilshare/internal/delivery/api/router"
	"oilshare/internal/delivery/api/router/handler"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/entity"
	domainerrors "oilshare/internal/domain/errors"
	mockUsecase "oilshare/internal/mocks/usecase"
	"oilshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo       *echo.Echo
	logistics  *mockUsecase.MockLogisticsUsecase
	reports    *mockUsecase.MockReportUsecase
	compliance *mockUsecase.MockComplianceUsecase
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	fx := &apiFixtures{
		logistics:  mockUsecase.NewMockLogisticsUsecase(t),
		reports:    mockUsecase.NewMockReportUsecase(t),
		compliance: mockUsecase.NewMockComplianceUsecase(t),
	}

	fx.echo = NewEcho(cfg, logger, router.RouterParams{
		LogisticsHandler: handler.NewLogisticsHandler(handler.LogisticsHandlerParams{
			LogisticsUC: fx.logistics,
			Logger:      logger,
		}),
		ReportHandler: handler.NewReportHandler(handler.ReportHandlerParams{
			ReportUC: fx.reports,
			Logger:   logger,
		}),
		ComplianceHandler: handler.NewComplianceHandler(handler.ComplianceHandlerParams{
			ComplianceUC: fx.compliance,
			Logger:       logger,
		}),
	})

	return fx
}

func (fx *apiFixtures) do(t *testing.T, method, target string, body io.Reader, contentType string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var envelope response.Response
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}

	return rec, envelope
}

func (fx *apiFixtures) doJSON(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	return fx.do(t, method, target, reader, echo.MIMEApplicationJSON)
}

func TestHealthCheck(t *testing.T) {
	fx := createTestAPI(t)

	rec, envelope := fx.doJSON(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Service is healthy", envelope.Message)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestListGenerators(t *testing.T) {
	fx := createTestAPI(t)
	fx.logistics.EXPECT().ListGenerators(mock.Anything).Return([]*entity.Generator{
		{ID: "G1", Name: "La Cocina Criolla", CurrentLoadKg: 12, WasteType: entity.WasteTypeUCO},
	}, nil).Once()

	rec, envelope := fx.doJSON(t, http.MethodGet, "/api/v1/generators", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Contains(t, rec.Body.String(), `"current_load_kg":12`)
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(fx *apiFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "valid selection",
			body: `{"generator_ids":["G2","G4"]}`,
			setup: func(fx *apiFixtures) {
				fx.logistics.EXPECT().Estimate(mock.Anything, []string{"G2", "G4"}).
					Return(&entity.CollectionOutcome{Count: 3, TotalKg: 177, SavingsUSD: 22.5, IsViable: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty id rejected by validation",
			body:       `{"generator_ids":["G2",""]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"generator_ids":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "unknown generator",
			body: `{"generator_ids":["G9"]}`,
			setup: func(fx *apiFixtures) {
				fx.logistics.EXPECT().Estimate(mock.Anything, []string{"G9"}).
					Return(nil, errors.Wrap(domainerrors.ErrGeneratorNotFound.WithDetails("G9"), "generator not found")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "GENERATOR_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec, envelope := fx.doJSON(t, http.MethodPost, "/api/v1/logistics/estimate", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.True(t, envelope.Success)
				assert.Contains(t, rec.Body.String(), `"savings_usd":22.5`)

				return
			}
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := uuid.New()
	view := &usecase.SessionView{ID: sessionID, SelfID: "G1", GeneratorIDs: []string{"G1"}}
	toggled := &usecase.SessionView{ID: sessionID, SelfID: "G1", GeneratorIDs: []string{"G1", "G2"}}
	base := "/api/v1/logistics/sessions/" + sessionID.String()

	fx.logistics.EXPECT().CreateSession(mock.Anything).Return(view, nil).Once()
	fx.logistics.EXPECT().GetSession(mock.Anything, sessionID).Return(view, nil).Once()
	fx.logistics.EXPECT().ToggleGenerator(mock.Anything, sessionID, "G2").Return(toggled, nil).Once()
	fx.logistics.EXPECT().ResetSession(mock.Anything, sessionID).Return(view, nil).Once()
	fx.logistics.EXPECT().PreviewRoute(mock.Anything, sessionID).
		Return(&entity.RoutePreview{Stops: 1, ETA: "30 min"}, nil).Once()
	fx.logistics.EXPECT().DeleteSession(mock.Anything, sessionID).Return(nil).Once()

	rec, envelope := fx.doJSON(t, http.MethodPost, "/api/v1/logistics/sessions", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Session created", envelope.Message)

	rec, _ = fx.doJSON(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.doJSON(t, http.MethodPost, base+"/toggle", `{"generator_id":"G2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"generator_ids":["G1","G2"]`)

	rec, _ = fx.doJSON(t, http.MethodPost, base+"/reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.doJSON(t, http.MethodGet, base+"/route", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eta":"30 min"`)

	rec, envelope = fx.doJSON(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Session deleted", envelope.Message)
}

func TestSessionErrors(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := uuid.New()

	rec, envelope := fx.doJSON(t, http.MethodGet, "/api/v1/logistics/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SESSION_ID", envelope.Error.Code)

	rec, envelope = fx.doJSON(t, http.MethodPost, "/api/v1/logistics/sessions/"+sessionID.String()+"/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Equal(t, "generator_id must satisfy required", envelope.Error.Details)

	fx.logistics.EXPECT().GetSession(mock.Anything, sessionID).
		Return(nil, errors.Wrap(domainerrors.ErrSessionNotFound, "failed to find session")).Once()

	rec, envelope = fx.doJSON(t, http.MethodGet, "/api/v1/logistics/sessions/"+sessionID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", envelope.Error.Code)
}

func TestRequestCollection(t *testing.T) {
	sessionID := uuid.New()
	target := "/api/v1/logistics/sessions/" + sessionID.String() + "/collection-requests"

	tests := []struct {
		name       string
		result     *entity.CollectionRequest
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "accepted",
			result:     &entity.CollectionRequest{ID: uuid.New(), SessionID: sessionID, GeneratorIDs: []string{"G1", "G4"}},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "not viable",
			err:        errors.Wrap(domainerrors.ErrRouteNotViable, "request collection"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ROUTE_NOT_VIABLE",
		},
		{
			name:       "publish failure hides details",
			err:        errors.Wrap(domainerrors.ErrEventPublishFailed.WithDetails("topic missing"), "request collection"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "EVENT_PUBLISH_FAILED",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.logistics.EXPECT().RequestCollection(mock.Anything, sessionID).Return(tt.result, tt.err).Once()

			rec, envelope := fx.doJSON(t, http.MethodPost, target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.True(t, envelope.Success)

				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Empty(t, envelope.Error.Details)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestReports(t *testing.T) {
	fx := createTestAPI(t)
	kg := 45.2
	january := &entity.MonthlyReport{Month: "January", MonthIndex: 0, KgGenerated: &kg, Status: entity.ReportStatusVerified, CertificateID: "CERT-001"}

	fx.reports.EXPECT().ListReports(mock.Anything).Return([]*entity.MonthlyReport{january}, nil).Once()
	fx.reports.EXPECT().GetReport(mock.Anything, 0).Return(january, nil).Once()
	fx.reports.EXPECT().GetReport(mock.Anything, 12).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidMonth, "get report")).Once()

	rec, _ := fx.doJSON(t, http.MethodGet, "/api/v1/reports", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.doJSON(t, http.MethodGet, "/api/v1/reports/0", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"certificate_id":"CERT-001"`)

	rec, envelope := fx.doJSON(t, http.MethodGet, "/api/v1/reports/12", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MONTH", envelope.Error.Code)

	rec, envelope = fx.doJSON(t, http.MethodGet, "/api/v1/reports/june", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MONTH", envelope.Error.Code)
}

func TestUpdateAmount(t *testing.T) {
	fx := createTestAPI(t)
	fx.reports.EXPECT().UpdateAmount(mock.Anything, 4, 52.5).
		Return(&entity.MonthlyReport{MonthIndex: 4, Status: entity.ReportStatusVerified}, nil).Once()

	rec, envelope := fx.doJSON(t, http.MethodPut, "/api/v1/reports/4", `{"amount_kg":52.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Amount updated", envelope.Message)

	rec, envelope = fx.doJSON(t, http.MethodPut, "/api/v1/reports/4", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)

	rec, envelope = fx.doJSON(t, http.MethodPut, "/api/v1/reports/4", `{"amount_kg":-3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func multipartBody(t *testing.T, fields map[string]string, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadCertificate(t *testing.T) {
	fx := createTestAPI(t)
	fx.reports.EXPECT().RegisterCertificate(mock.Anything, mock.AnythingOfType("*usecase.CertificateUpload")).
		RunAndReturn(func(_ context.Context, upload *usecase.CertificateUpload) (*entity.MonthlyReport, error) {
			content, err := io.ReadAll(upload.Content)
			require.NoError(t, err)
			assert.Equal(t, "certificate body", string(content))
			assert.Equal(t, 5, upload.MonthIndex)
			assert.InDelta(t, 61.5, upload.AmountKg, 1e-9)
			assert.Equal(t, "june.pdf", upload.FileName)

			return &entity.MonthlyReport{MonthIndex: 5, Status: entity.ReportStatusVerified, FileName: upload.FileName}, nil
		}).Once()

	body, contentType := multipartBody(t, map[string]string{"amount_kg": "61.5"}, "june.pdf", "certificate body")
	rec, envelope := fx.do(t, http.MethodPost, "/api/v1/reports/5/certificate", body, contentType)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Certificate registered", envelope.Message)

	body, contentType = multipartBody(t, map[string]string{"amount_kg": "61.5"}, "", "")
	rec, envelope = fx.do(t, http.MethodPost, "/api/v1/reports/5/certificate", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", envelope.Error.Code)

	body, contentType = multipartBody(t, map[string]string{"amount_kg": "lots"}, "june.pdf", "x")
	rec, envelope = fx.do(t, http.MethodPost, "/api/v1/reports/5/certificate", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestSimulateExtraction(t *testing.T) {
	fx := createTestAPI(t)
	fx.reports.EXPECT().SimulateExtraction(mock.Anything, "scan.pdf").
		Return(&usecase.ExtractionResult{FileName: "scan.pdf", AmountKg: 120.5}, nil).Once()

	body, contentType := multipartBody(t, nil, "scan.pdf", "pdf")
	rec, _ := fx.do(t, http.MethodPost, "/api/v1/reports/extract", body, contentType)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount_kg":120.5`)

	body, contentType = multipartBody(t, nil, "", "")
	rec, envelope := fx.do(t, http.MethodPost, "/api/v1/reports/extract", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", envelope.Error.Code)
}

func TestCertificateQR(t *testing.T) {
	fx := createTestAPI(t)
	fx.reports.EXPECT().CertificateQR(mock.Anything, 0).Return([]byte("\x89PNG"), nil).Once()
	fx.reports.EXPECT().CertificateQR(mock.Anything, 7).
		Return(nil, errors.Wrap(domainerrors.ErrCertificateNotFound, "certificate qr")).Once()

	rec, _ := fx.doJSON(t, http.MethodGet, "/api/v1/reports/0/qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec, envelope := fx.doJSON(t, http.MethodGet, "/api/v1/reports/7/qr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CERTIFICATE_NOT_FOUND", envelope.Error.Code)
}

func TestVerifyCertificate(t *testing.T) {
	fx := createTestAPI(t)
	fx.reports.EXPECT().VerifyCertificate(mock.Anything, `{"certificate_id":"CERT-001"}`).
		Return(&usecase.VerificationResult{Valid: false}, nil).Once()

	rec, _ := fx.doJSON(t, http.MethodPost, "/api/v1/certificates/verify", `{"qr_data":"{\"certificate_id\":\"CERT-001\"}"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)

	rec, envelope := fx.doJSON(t, http.MethodPost, "/api/v1/certificates/verify", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestComplianceRoutes(t *testing.T) {
	fx := createTestAPI(t)
	fx.compliance.EXPECT().GetProfile(mock.Anything).Return(&entity.RegulatoryProfile{LegalName: "CARIBBEAN GASTRONOMY LLC"}, nil).Once()
	fx.compliance.EXPECT().GetStatus(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.ComplianceStatus{IsRegistered: true, Completed: 4, Total: 6}, nil).Once()
	fx.compliance.EXPECT().ListChecklist(mock.Anything).Return([]*entity.ComplianceItem{{ID: "1"}}, nil).Once()
	fx.compliance.EXPECT().ListWastewaterReports(mock.Anything).Return([]*entity.WastewaterReport{{ID: "LAB-2023-01"}}, nil).Once()
	fx.compliance.EXPECT().GetDashboard(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.DashboardSummary{TotalKg: 175.8, ComplianceScore: 66}, nil).Once()
	fx.compliance.EXPECT().GetAuditReport(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.AuditReport{FullyCompliant: false, Recommendations: []string{"Pending (Yearly): Sustainability Training (Annual)."}}, nil).Once()
	fx.compliance.EXPECT().SearchDirectory(mock.Anything, "north").
		Return([]*entity.DirectoryEntry{{ID: 1, Name: "EcoOil Solutions"}}, nil).Once()

	tests := []struct {
		target   string
		contains string
	}{
		{target: "/api/v1/compliance/profile", contains: `"legal_name":"CARIBBEAN GASTRONOMY LLC"`},
		{target: "/api/v1/compliance/status", contains: `"is_registered":true`},
		{target: "/api/v1/compliance/checklist", contains: `"id":"1"`},
		{target: "/api/v1/compliance/wastewater", contains: `"id":"LAB-2023-01"`},
		{target: "/api/v1/dashboard", contains: `"compliance_score":66`},
		{target: "/api/v1/audit-report", contains: `"fully_compliant":false`},
		{target: "/api/v1/directory?q=north", contains: `"name":"EcoOil Solutions"`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec, envelope := fx.doJSON(t, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, envelope.Success)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec, envelope := fx.doJSON(t, http.MethodGet, "/api/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "ROUTE_NOT_FOUND", envelope.Error.Code)
}
