package service

// CertificatePayload is the content encoded in a disposal certificate QR code.
type CertificatePayload struct {
	CertificateID string `json:"certificate_id"`
	MonthIndex    int    `json:"month_index"`
	Checksum      string `json:"checksum,omitempty"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCertificateQR generates a PNG QR code for a disposal certificate
	GenerateCertificateQR(payload CertificatePayload) ([]byte, error)

	// ParseCertificateQR parses QR code data back into a certificate payload
	ParseCertificateQR(qrData string) (*CertificatePayload, error)
}
