package qrcode

import (
	"encoding/json"
	"strings"

	"oilshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	// certificateType tags QR payloads issued for disposal certificates
	certificateType = "disposal_certificate"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON document encoded in a certificate QR code
type QRCodeData struct {
	CertificateID string `json:"certificate_id"`
	MonthIndex    int    `json:"month_index"`
	Checksum      string `json:"checksum,omitempty"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a QR code service. Unknown levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Encode returns the text stored in the QR code for a certificate.
func Encode(payload service.CertificatePayload) (string, error) {
	if payload.CertificateID == "" {
		return "", errors.New("certificate id is required")
	}

	data, err := json.Marshal(QRCodeData{
		CertificateID: payload.CertificateID,
		MonthIndex:    payload.MonthIndex,
		Checksum:      payload.Checksum,
		Type:          certificateType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}

func (s *qrcodeService) GenerateCertificateQR(payload service.CertificatePayload) ([]byte, error) {
	content, err := Encode(payload)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) ParseCertificateQR(qrData string) (*service.CertificatePayload, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != certificateType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.CertificateID == "" {
		return nil, errors.New("QR code has no certificate id")
	}

	return &service.CertificatePayload{
		CertificateID: data.CertificateID,
		MonthIndex:    data.MonthIndex,
		Checksum:      data.Checksum,
	}, nil
}
