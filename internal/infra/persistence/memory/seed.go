package memory

import (
	"oilshare/config"
	"oilshare/internal/domain/entity"

	"github.com/pkg/errors"
)

const defaultSeedFile = "compliance"

// Seed is the static compliance dataset loaded at startup.
type Seed struct {
	Profile    entity.RegulatoryProfile   `yaml:"profile"`
	Checklist  []*entity.ComplianceItem   `yaml:"checklist"`
	Wastewater []*entity.WastewaterReport `yaml:"wastewater"`
	Reports    []*entity.MonthlyReport    `yaml:"reports"`
	Directory  []*entity.DirectoryEntry   `yaml:"directory"`
}

// LoadSeed reads the compliance seed file named in the configuration.
func LoadSeed(cfg *config.Config) (*Seed, error) {
	name := defaultSeedFile
	if cfg.Compliance != nil && cfg.Compliance.SeedFile != "" {
		name = cfg.Compliance.SeedFile
	}

	seed, err := config.LoadFile[Seed](name, config.SearchPaths()...)
	if err != nil {
		return nil, errors.Wrap(err, "load compliance seed")
	}

	for _, report := range seed.Reports {
		if !entity.ValidMonth(report.MonthIndex) {
			return nil, errors.Errorf("seed report has invalid month index %d", report.MonthIndex)
		}
	}

	return seed, nil
}
