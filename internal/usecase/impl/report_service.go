package impl

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/entity"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/domain/repository"
	"oilshare/internal/domain/service"
	"oilshare/internal/usecase"
	"oilshare/internal/util"

	"github.com/pkg/errors"
)

// Simulated extraction yields floor(rand*span + min) + 0.5 kg.
const (
	extractionMinKg  = 50
	extractionSpanKg = 150
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reports repository.ReportRepository
	qrcode  service.QRCodeService
	logger  *slog.Logger
	now     func() time.Time
	random  func() float64
}

// NewReportService is the constructor for reportService.
func NewReportService(
	reports repository.ReportRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		reports: reports,
		qrcode:  qrcode,
		logger:  logger,
		now:     time.Now,
		random:  rand.Float64,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) ListReports(ctx context.Context) ([]*entity.MonthlyReport, error) {
	reports, err := srv.reports.ListReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

func (srv *reportService) GetReport(ctx context.Context, monthIndex int) (*entity.MonthlyReport, error) {
	if !entity.ValidMonth(monthIndex) {
		return nil, errors.Wrap(domainerrors.ErrInvalidMonth, "get report")
	}

	report, err := srv.reports.FindReportByMonth(ctx, monthIndex)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReportNotFound, "get report")
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return report, nil
}

func (srv *reportService) RegisterCertificate(ctx context.Context, upload *usecase.CertificateUpload) (*entity.MonthlyReport, error) {
	if err := validateAmount(upload.AmountKg); err != nil {
		return nil, err
	}

	report, err := srv.GetReport(ctx, upload.MonthIndex)
	if err != nil {
		return nil, err
	}

	if upload.Content != nil {
		checksum, size, err := util.Checksum(upload.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read certificate")
		}
		report.Checksum = checksum

		srv.log(ctx).Info("Certificate received",
			slog.Int("month_index", upload.MonthIndex),
			slog.String("file_name", upload.FileName),
			slog.String("size", util.FormatBytes(size)),
			slog.String("checksum", checksum),
		)
	}

	if name := strings.TrimSpace(upload.FileName); name != "" {
		report.FileName = name
		report.FileURL = name
	}

	if err := srv.verify(ctx, report, upload.AmountKg); err != nil {
		return nil, err
	}

	return report, nil
}

func (srv *reportService) UpdateAmount(ctx context.Context, monthIndex int, amountKg float64) (*entity.MonthlyReport, error) {
	if err := validateAmount(amountKg); err != nil {
		return nil, err
	}

	report, err := srv.GetReport(ctx, monthIndex)
	if err != nil {
		return nil, err
	}

	if err := srv.verify(ctx, report, amountKg); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Report amount updated",
		slog.Int("month_index", monthIndex),
		slog.Float64("kg_generated", amountKg),
	)

	return report, nil
}

func (srv *reportService) SimulateExtraction(ctx context.Context, fileName string) (*usecase.ExtractionResult, error) {
	amount := math.Floor(srv.random()*extractionSpanKg+extractionMinKg) + 0.5

	srv.log(ctx).Debug("Simulated certificate extraction",
		slog.String("file_name", fileName),
		slog.Float64("amount_kg", amount),
	)

	return &usecase.ExtractionResult{FileName: fileName, AmountKg: amount}, nil
}

func (srv *reportService) CertificateQR(ctx context.Context, monthIndex int) ([]byte, error) {
	report, err := srv.GetReport(ctx, monthIndex)
	if err != nil {
		return nil, err
	}

	if !report.HasCertificate() {
		return nil, errors.Wrap(domainerrors.ErrCertificateNotFound, "certificate qr")
	}

	png, err := srv.qrcode.GenerateCertificateQR(service.CertificatePayload{
		CertificateID: report.CertificateID,
		MonthIndex:    report.MonthIndex,
		Checksum:      report.Checksum,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate certificate QR")
	}

	return png, nil
}

func (srv *reportService) VerifyCertificate(ctx context.Context, qrData string) (*usecase.VerificationResult, error) {
	payload, err := srv.qrcode.ParseCertificateQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCertificateInvalid.WithDetails(err.Error()), "verify certificate")
	}

	report, err := srv.GetReport(ctx, payload.MonthIndex)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return &usecase.VerificationResult{Valid: false}, nil
		}

		return nil, err
	}

	valid := report.HasCertificate() &&
		report.CertificateID == payload.CertificateID &&
		report.Checksum == payload.Checksum

	srv.log(ctx).Info("Certificate verified",
		slog.String("certificate_id", payload.CertificateID),
		slog.Bool("valid", valid),
	)

	result := &usecase.VerificationResult{Valid: valid}
	if valid {
		result.Report = report
	}

	return result, nil
}

// verify records the amount and moves the report to VERIFIED, assigning a certificate id when missing.
func (srv *reportService) verify(ctx context.Context, report *entity.MonthlyReport, amountKg float64) error {
	if !report.HasCertificate() {
		id, err := srv.reports.NextCertificateID(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to assign certificate id")
		}
		report.CertificateID = id
	}

	kg := amountKg
	report.KgGenerated = &kg
	report.Status = entity.ReportStatusVerified
	report.LastUpdated = srv.now().Format(entity.DateLayout)

	if err := srv.reports.SaveReport(ctx, report); err != nil {
		return errors.Wrap(err, "failed to save report")
	}

	return nil
}

func validateAmount(amountKg float64) error {
	if math.IsNaN(amountKg) || math.IsInf(amountKg, 0) || amountKg < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("amount must be a non-negative number"), "validate amount")
	}

	return nil
}
