package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"
)

const certificatePrefix = "CERT-"

type reportRepository struct {
	mu       sync.RWMutex
	reports  [entity.ReportMonths]*entity.MonthlyReport
	lastCert int
}

// NewReportRepository seeds one report per month; months missing from the seed start pending.
func NewReportRepository(seed *Seed) repository.ReportRepository {
	repo := &reportRepository{}
	for i := range repo.reports {
		repo.reports[i] = entity.PendingReport(i)
	}

	if seed != nil {
		for _, report := range seed.Reports {
			if !entity.ValidMonth(report.MonthIndex) {
				continue
			}
			stored := report.Clone()
			stored.Month = entity.MonthName(stored.MonthIndex)
			repo.reports[stored.MonthIndex] = stored
			repo.trackCertificate(stored.CertificateID)
		}
	}

	return repo
}

func (r *reportRepository) ListReports(_ context.Context) ([]*entity.MonthlyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.MonthlyReport, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, report.Clone())
	}

	return out, nil
}

func (r *reportRepository) FindReportByMonth(_ context.Context, monthIndex int) (*entity.MonthlyReport, error) {
	if !entity.ValidMonth(monthIndex) {
		return nil, repository.ErrReportNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reports[monthIndex].Clone(), nil
}

func (r *reportRepository) SaveReport(_ context.Context, report *entity.MonthlyReport) error {
	if !entity.ValidMonth(report.MonthIndex) {
		return repository.ErrReportNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := report.Clone()
	stored.Month = entity.MonthName(stored.MonthIndex)
	r.reports[stored.MonthIndex] = stored
	r.trackCertificate(stored.CertificateID)

	return nil
}

func (r *reportRepository) NextCertificateID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastCert++

	return fmt.Sprintf("%s%03d", certificatePrefix, r.lastCert), nil
}

// trackCertificate keeps lastCert at the highest issued sequence. Callers hold mu.
func (r *reportRepository) trackCertificate(id string) {
	seq, err := strconv.Atoi(strings.TrimPrefix(id, certificatePrefix))
	if err != nil || !strings.HasPrefix(id, certificatePrefix) {
		return
	}
	if seq > r.lastCert {
		r.lastCert = seq
	}
}
