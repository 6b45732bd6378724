package repository

import (
	"context"

	"oilshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReportNotFound is returned when no report exists for a month.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository stores the monthly disposal reports.
type ReportRepository interface {
	// ListReports returns one report per tracked month ordered by month index.
	ListReports(ctx context.Context) ([]*entity.MonthlyReport, error)

	// FindReportByMonth returns the report of one month.
	FindReportByMonth(ctx context.Context, monthIndex int) (*entity.MonthlyReport, error)

	// SaveReport replaces the report of its month.
	SaveReport(ctx context.Context, report *entity.MonthlyReport) error

	// NextCertificateID returns an unused certificate identifier.
	NextCertificateID(ctx context.Context) (string, error)
}
