package repository

import (
	"context"

	"oilshare/internal/domain/entity"
)

// ComplianceRepository provides the regulatory records of the business.
type ComplianceRepository interface {
	GetProfile(ctx context.Context) (*entity.RegulatoryProfile, error)
	ListChecklist(ctx context.Context) ([]*entity.ComplianceItem, error)
	ListWastewaterReports(ctx context.Context) ([]*entity.WastewaterReport, error)
	ListDirectory(ctx context.Context) ([]*entity.DirectoryEntry, error)
}
