// Package registry loads the generator catalog and serves it from memory.
package registry

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"oilshare/internal/domain/entity"

	"github.com/pkg/errors"
)

const generatorColumns = 8

// Load reads the generator catalog from a CSV file.
// Expected CSV format: id,name,address,distance_km,current_load_kg,waste_type,lat,lng
func Load(path string) ([]*entity.Generator, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads generators from CSV content with a header row.
func Parse(r io.Reader) ([]*entity.Generator, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Column count is validated per row below; extra trailing columns are ignored.
	reader.FieldsPerRecord = -1

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.Wrap(err, "read generators header")
	}

	var generators []*entity.Generator
	seen := make(map[string]struct{})
	lineNum := 1 // Start at 1 because we skipped header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < generatorColumns {
			return nil, errors.Errorf("invalid generators format at line %d: expected %d columns, got %d", lineNum, generatorColumns, len(record))
		}

		generator, parseErr := parseGenerator(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		if _, dup := seen[generator.ID]; dup {
			return nil, errors.Errorf("duplicate generator id %q at line %d", generator.ID, lineNum)
		}
		seen[generator.ID] = struct{}{}

		generators = append(generators, generator)
	}

	return generators, nil
}

func parseGenerator(record []string, lineNum int) (*entity.Generator, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return nil, errors.Errorf("empty generator id at line %d", lineNum)
	}

	distance, err := parseNonNegative(record[3], "distance_km", lineNum)
	if err != nil {
		return nil, err
	}

	load, err := parseNonNegative(record[4], "current_load_kg", lineNum)
	if err != nil {
		return nil, err
	}

	wasteType := entity.WasteType(strings.ToUpper(strings.TrimSpace(record[5])))
	if !wasteType.IsValid() {
		return nil, errors.Errorf("unknown waste_type %q at line %d", record[5], lineNum)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse lat at line %d", lineNum)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[7]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse lng at line %d", lineNum)
	}

	return &entity.Generator{
		ID:            id,
		Name:          strings.TrimSpace(record[1]),
		Address:       strings.TrimSpace(record[2]),
		DistanceKm:    distance,
		CurrentLoadKg: load,
		WasteType:     wasteType,
		Lat:           lat,
		Lng:           lng,
	}, nil
}

func parseNonNegative(raw, column string, lineNum int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s at line %d", column, lineNum)
	}
	if v < 0 {
		return 0, errors.Errorf("negative %s at line %d", column, lineNum)
	}

	return v, nil
}
