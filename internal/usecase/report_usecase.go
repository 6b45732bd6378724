package usecase

import (
	"context"
	"io"

	"oilshare/internal/domain/entity"
)

// CertificateUpload carries a disposal certificate document and the amount it certifies
type CertificateUpload struct {
	MonthIndex int
	AmountKg   float64
	FileName   string
	Content    io.Reader
}

// ExtractionResult is the simulated reading of a certificate document
type ExtractionResult struct {
	FileName string  `json:"file_name"`
	AmountKg float64 `json:"amount_kg"`
}

// VerificationResult reports whether a scanned certificate matches the stored report
type VerificationResult struct {
	Valid  bool                  `json:"valid"`
	Report *entity.MonthlyReport `json:"report"`
}

// ReportUsecase defines monthly disposal report use cases
type ReportUsecase interface {
	ListReports(ctx context.Context) ([]*entity.MonthlyReport, error)
	GetReport(ctx context.Context, monthIndex int) (*entity.MonthlyReport, error)

	// RegisterCertificate attaches a certificate document and marks the month verified
	RegisterCertificate(ctx context.Context, upload *CertificateUpload) (*entity.MonthlyReport, error)

	// UpdateAmount overrides the logged amount of a month
	UpdateAmount(ctx context.Context, monthIndex int, amountKg float64) (*entity.MonthlyReport, error)

	// SimulateExtraction stands in for OCR of a certificate document
	SimulateExtraction(ctx context.Context, fileName string) (*ExtractionResult, error)

	// CertificateQR returns a PNG QR code identifying the certificate of a month
	CertificateQR(ctx context.Context, monthIndex int) ([]byte, error)

	// VerifyCertificate checks scanned QR data against the stored report
	VerifyCertificate(ctx context.Context, qrData string) (*VerificationResult, error)
}
