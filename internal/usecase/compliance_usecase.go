package usecase

import (
	"context"
	"time"

	"oilshare/internal/domain/entity"
)

// ComplianceUsecase defines regulatory tracking use cases
type ComplianceUsecase interface {
	GetProfile(ctx context.Context) (*entity.RegulatoryProfile, error)
	ListChecklist(ctx context.Context) ([]*entity.ComplianceItem, error)
	ListWastewaterReports(ctx context.Context) ([]*entity.WastewaterReport, error)

	// SearchDirectory filters authorized managers by name, type or area
	SearchDirectory(ctx context.Context, query string) ([]*entity.DirectoryEntry, error)

	// GetStatus evaluates registration, maintenance schedule and checklist completion at now
	GetStatus(ctx context.Context, now time.Time) (*entity.ComplianceStatus, error)

	// GetDashboard summarizes the annual impact at now
	GetDashboard(ctx context.Context, now time.Time) (*entity.DashboardSummary, error)

	// GetAuditReport builds the audit diagnosis issued at now, recommendations included
	GetAuditReport(ctx context.Context, now time.Time) (*entity.AuditReport, error)
}
