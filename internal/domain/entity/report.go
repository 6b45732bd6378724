package entity

import "time"

// DateLayout is the calendar date format used across compliance records.
const DateLayout = "2006-01-02"

// ReportMonths is the number of monthly slots tracked per year.
const ReportMonths = 12

// ReportStatus is the lifecycle state of a monthly disposal report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusUploaded ReportStatus = "UPLOADED"
	ReportStatusVerified ReportStatus = "VERIFIED"
)

// MonthlyReport records the UCO generated in one calendar month and the
// disposal certificate backing it.
type MonthlyReport struct {
	Month         string       `json:"month" yaml:"month"`
	MonthIndex    int          `json:"month_index" yaml:"monthIndex"`   // 0 = January.
	KgGenerated   *float64     `json:"kg_generated" yaml:"kgGenerated"` // nil until an amount is logged.
	Status        ReportStatus `json:"status" yaml:"status"`
	CertificateID string       `json:"certificate_id,omitempty" yaml:"certificateId"`
	FileName      string       `json:"file_name,omitempty" yaml:"fileName"`
	FileURL       string       `json:"file_url,omitempty" yaml:"fileUrl"`
	Checksum      string       `json:"checksum,omitempty" yaml:"checksum"`
	LastUpdated   string       `json:"last_updated,omitempty" yaml:"lastUpdated"`
}

// HasCertificate reports whether a certificate document is attached.
func (r *MonthlyReport) HasCertificate() bool {
	return r.CertificateID != ""
}

// Kg returns the logged amount, or zero when nothing was logged.
func (r *MonthlyReport) Kg() float64 {
	if r.KgGenerated == nil {
		return 0
	}

	return *r.KgGenerated
}

// Clone returns a deep copy of the report.
func (r *MonthlyReport) Clone() *MonthlyReport {
	cloned := *r
	if r.KgGenerated != nil {
		kg := *r.KgGenerated
		cloned.KgGenerated = &kg
	}

	return &cloned
}

// MonthName returns the English name for a zero-based month index.
func MonthName(monthIndex int) string {
	return time.Month(monthIndex + 1).String()
}

// ValidMonth reports whether monthIndex addresses one of the tracked slots.
func ValidMonth(monthIndex int) bool {
	return monthIndex >= 0 && monthIndex < ReportMonths
}

// PendingReport returns the empty slot for a month without data.
func PendingReport(monthIndex int) *MonthlyReport {
	return &MonthlyReport{
		Month:      MonthName(monthIndex),
		MonthIndex: monthIndex,
		Status:     ReportStatusPending,
	}
}
