package memory

import (
	"context"

	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"
)

type complianceRepository struct {
	seed *Seed
}

// NewComplianceRepository serves the read-only compliance records of the seed.
func NewComplianceRepository(seed *Seed) repository.ComplianceRepository {
	if seed == nil {
		seed = &Seed{}
	}

	return &complianceRepository{seed: seed}
}

func (r *complianceRepository) GetProfile(_ context.Context) (*entity.RegulatoryProfile, error) {
	profile := r.seed.Profile

	return &profile, nil
}

func (r *complianceRepository) ListChecklist(_ context.Context) ([]*entity.ComplianceItem, error) {
	out := make([]*entity.ComplianceItem, 0, len(r.seed.Checklist))
	for _, item := range r.seed.Checklist {
		cp := *item
		out = append(out, &cp)
	}

	return out, nil
}

func (r *complianceRepository) ListWastewaterReports(_ context.Context) ([]*entity.WastewaterReport, error) {
	out := make([]*entity.WastewaterReport, 0, len(r.seed.Wastewater))
	for _, report := range r.seed.Wastewater {
		cp := *report
		cp.Recommendations = append([]string(nil), report.Recommendations...)
		out = append(out, &cp)
	}

	return out, nil
}

func (r *complianceRepository) ListDirectory(_ context.Context) ([]*entity.DirectoryEntry, error) {
	out := make([]*entity.DirectoryEntry, 0, len(r.seed.Directory))
	for _, entry := range r.seed.Directory {
		cp := *entry
		out = append(out, &cp)
	}

	return out, nil
}
