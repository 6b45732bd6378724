package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"
	"oilshare/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultCO2PerKgUCO           = 2.85
	defaultDueSoonDays           = 3
	defaultGroupEfficiencyFactor = 0.70

	// Discharges below this pH are reported as acidic.
	acidicPHThreshold = 6.0
)

// complianceService implements the ComplianceUsecase interface.
type complianceService struct {
	records         repository.ComplianceRepository
	reports         repository.ReportRepository
	co2PerKgUCO     float64
	dueSoonDays     int
	groupSavingsPct int // Cost saved on a shared route of three or more, in percent.
	logger          *slog.Logger
}

// NewComplianceService is the constructor for complianceService.
func NewComplianceService(
	cfg *config.Config,
	records repository.ComplianceRepository,
	reports repository.ReportRepository,
	logger *slog.Logger,
) usecase.ComplianceUsecase {
	srv := &complianceService{
		records:     records,
		reports:     reports,
		co2PerKgUCO: defaultCO2PerKgUCO,
		dueSoonDays: defaultDueSoonDays,
		logger:      logger,
	}

	groupFactor := defaultGroupEfficiencyFactor
	if lc := cfg.Logistics; lc != nil && lc.GroupEfficiencyFactor != nil {
		groupFactor = *lc.GroupEfficiencyFactor
	}
	srv.groupSavingsPct = int(math.Round((1 - groupFactor) * 100))

	if cc := cfg.Compliance; cc != nil {
		if cc.CO2PerKgUCO > 0 {
			srv.co2PerKgUCO = cc.CO2PerKgUCO
		}
		if cc.DueSoonDays > 0 {
			srv.dueSoonDays = cc.DueSoonDays
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *complianceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *complianceService) GetProfile(ctx context.Context) (*entity.RegulatoryProfile, error) {
	profile, err := srv.records.GetProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get regulatory profile")
	}

	return profile, nil
}

func (srv *complianceService) ListChecklist(ctx context.Context) ([]*entity.ComplianceItem, error) {
	items, err := srv.records.ListChecklist(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checklist")
	}

	return items, nil
}

func (srv *complianceService) ListWastewaterReports(ctx context.Context) ([]*entity.WastewaterReport, error) {
	reports, err := srv.records.ListWastewaterReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wastewater reports")
	}

	return reports, nil
}

func (srv *complianceService) SearchDirectory(ctx context.Context, query string) ([]*entity.DirectoryEntry, error) {
	entries, err := srv.records.ListDirectory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list directory")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return entries, nil
	}

	matches := make([]*entity.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) ||
			strings.Contains(strings.ToLower(entry.Type), needle) ||
			strings.Contains(strings.ToLower(entry.Area), needle) {
			matches = append(matches, entry)
		}
	}

	srv.log(ctx).Debug("Directory searched", slog.String("query", query), slog.Int("matches", len(matches)))

	return matches, nil
}

func (srv *complianceService) GetStatus(ctx context.Context, now time.Time) (*entity.ComplianceStatus, error) {
	profile, err := srv.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	items, err := srv.ListChecklist(ctx)
	if err != nil {
		return nil, err
	}

	maintenance, err := srv.maintenance(profile, now)
	if err != nil {
		return nil, err
	}

	status := &entity.ComplianceStatus{
		Maintenance: maintenance,
		Total:       len(items),
	}
	for _, item := range items {
		if !item.IsComplete {
			continue
		}
		status.Completed++
		if item.ID == entity.RegistrationItemID {
			status.IsRegistered = true
		}
	}

	return status, nil
}

func (srv *complianceService) GetDashboard(ctx context.Context, now time.Time) (*entity.DashboardSummary, error) {
	reports, err := srv.reports.ListReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	status, err := srv.GetStatus(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := &entity.DashboardSummary{
		Reports: reports,
		Status:  *status,
	}
	for _, report := range reports {
		summary.TotalKg += report.Kg()
		switch report.Status {
		case entity.ReportStatusVerified:
			summary.VerifiedMonths++
		case entity.ReportStatusUploaded:
			summary.UploadedMonths++
		default:
			summary.PendingMonths++
		}
	}
	summary.CO2AvoidedKg = summary.TotalKg * srv.co2PerKgUCO

	if status.Total > 0 {
		summary.ComplianceScore = status.Completed * 100 / status.Total
	}

	return summary, nil
}

func (srv *complianceService) GetAuditReport(ctx context.Context, now time.Time) (*entity.AuditReport, error) {
	summary, err := srv.GetDashboard(ctx, now)
	if err != nil {
		return nil, err
	}

	profile, err := srv.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	items, err := srv.ListChecklist(ctx)
	if err != nil {
		return nil, err
	}

	labs, err := srv.ListWastewaterReports(ctx)
	if err != nil {
		return nil, err
	}

	maintenance := summary.Status.Maintenance
	report := &entity.AuditReport{
		IssuedOn:         now.Format(entity.DateLayout),
		LegalName:        profile.LegalName,
		TaxID:            profile.TaxID,
		ComplianceMatrix: items,
		Infrastructure: entity.TrapInfrastructure{
			TrapType:           profile.TrapType,
			TrapCapacityLiters: profile.TrapCapacityLiters,
			LastMaintenance:    maintenance.LastMaintenance,
			NextMaintenance:    maintenance.NextMaintenance,
		},
		TotalKg:          summary.TotalKg,
		CO2AvoidedTonnes: summary.CO2AvoidedKg / 1000,
		Recommendations:  srv.recommendations(items, labs, maintenance),
	}

	report.FullyCompliant = summary.Status.Completed == summary.Status.Total && !maintenance.IsOverdue
	for _, lab := range labs {
		if lab.Status == entity.WastewaterNonCompliant {
			report.FullyCompliant = false
		}
	}

	srv.log(ctx).Info("Audit report issued",
		slog.Bool("fully_compliant", report.FullyCompliant),
		slog.Int("recommendations", len(report.Recommendations)),
	)

	return report, nil
}

// recommendations lists corrective actions, most urgent first.
func (srv *complianceService) recommendations(
	items []*entity.ComplianceItem,
	labs []*entity.WastewaterReport,
	maintenance entity.MaintenanceStatus,
) []string {
	var out []string

	switch {
	case maintenance.IsOverdue:
		out = append(out, fmt.Sprintf("Grease trap maintenance: overdue since %s, schedule a technical suction.", maintenance.NextMaintenance))
	case maintenance.IsDueSoon:
		out = append(out, fmt.Sprintf("Grease trap maintenance: due on %s.", maintenance.NextMaintenance))
	}

	for _, lab := range labs {
		if lab.PH > 0 && lab.PH < acidicPHThreshold {
			out = append(out, fmt.Sprintf("pH regulation: acidic discharge (pH %.1f) on %s, review usage of industrial degreasers.", lab.PH, lab.Date))
		}
		if lab.Status == entity.WastewaterNonCompliant {
			out = append(out, fmt.Sprintf("Wastewater: %s from %s is non-compliant, repeat the analysis after corrective actions.", lab.ID, lab.Laboratory))
		}
	}

	for _, item := range items {
		if !item.IsComplete {
			out = append(out, fmt.Sprintf("Pending (%s): %s.", item.RequiredFor, item.Label))
		}
	}

	if srv.groupSavingsPct > 0 {
		out = append(out, fmt.Sprintf("Collaborative logistics: shared collection routes cut collection cost by up to %d%%.", srv.groupSavingsPct))
	}

	return out
}

// maintenance projects the grease trap schedule. A profile without a last maintenance date has no schedule.
func (srv *complianceService) maintenance(profile *entity.RegulatoryProfile, now time.Time) (entity.MaintenanceStatus, error) {
	if strings.TrimSpace(profile.LastMaintenance) == "" {
		return entity.MaintenanceStatus{}, nil
	}

	last, err := time.ParseInLocation(entity.DateLayout, profile.LastMaintenance, now.Location())
	if err != nil {
		return entity.MaintenanceStatus{}, errors.Wrapf(err, "invalid last maintenance date %q", profile.LastMaintenance)
	}

	next := last.AddDate(0, 0, profile.MaintenanceFrequencyDays)
	days := int(math.Ceil(next.Sub(now).Hours() / 24))

	return entity.MaintenanceStatus{
		LastMaintenance: profile.LastMaintenance,
		NextMaintenance: next.Format(entity.DateLayout),
		DaysRemaining:   days,
		IsOverdue:       days < 0,
		IsDueSoon:       days >= 0 && days <= srv.dueSoonDays,
	}, nil
}
