package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "id,name,address,distance_km,current_load_kg,waste_type,lat,lng\n"

func TestLoad_GeneratorsCSV(t *testing.T) {
	tmpDir := t.TempDir()

	content := header + `G1,Your Restaurant (You),Calle 10,0,12,UCO,50,45
G2,La Mia Pizzeria,Av. Central,0.8,45,uco,40,35
G4,"Grand Plaza Hotel","Blvd. 1, Zona Hotelera",2.5,120,FOG,20,80
`
	path := filepath.Join(tmpDir, "generators.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	generators, err := Load(path)
	require.NoError(t, err)
	require.Len(t, generators, 3)

	assert.Equal(t, "G1", generators[0].ID)
	assert.InDelta(t, 12.0, generators[0].CurrentLoadKg, 1e-9)
	assert.Equal(t, entity.WasteTypeUCO, generators[1].WasteType)
	assert.Equal(t, "Blvd. 1, Zona Hotelera", generators[2].Address)
	assert.Equal(t, entity.WasteTypeFOG, generators[2].WasteType)
	assert.InDelta(t, 80.0, generators[2].Lng, 1e-9)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    string
		wantErr string
	}{
		{name: "too few columns", rows: "G1,Name,Addr,0,12\n", wantErr: "invalid generators format at line 2: expected 8 columns, got 5"},
		{name: "negative load", rows: "G1,Name,Addr,0,-1,UCO,1,1\n", wantErr: "negative current_load_kg at line 2"},
		{name: "negative distance", rows: "G1,Name,Addr,-2,1,UCO,1,1\n", wantErr: "negative distance_km"},
		{name: "bad waste type", rows: "G1,Name,Addr,0,1,OIL,1,1\n", wantErr: "unknown waste_type"},
		{name: "bad lat", rows: "G1,Name,Addr,0,1,UCO,north,1\n", wantErr: "parse lat at line 2"},
		{name: "empty id", rows: " ,Name,Addr,0,1,UCO,1,1\n", wantErr: "empty generator id"},
		{name: "duplicate id", rows: "G1,A,Addr,0,1,UCO,1,1\nG1,B,Addr,0,1,UCO,1,1\n", wantErr: "duplicate generator id \"G1\" at line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tt.rows))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	generators, err := Parse(strings.NewReader(header + "G1,Name,Addr,0,12,UCO,1,1,extra\nG2,Other,Addr,1,30,fog,2,2\n"))
	require.NoError(t, err)
	require.Len(t, generators, 2)

	assert.Equal(t, "G1", generators[0].ID)
	assert.InDelta(t, 12.0, generators[0].CurrentLoadKg, 1e-9)
	assert.Equal(t, entity.WasteTypeFOG, generators[1].WasteType)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNewFromGenerators(t *testing.T) {
	generators := []*entity.Generator{
		{ID: "G1", CurrentLoadKg: 12},
		{ID: "G2", CurrentLoadKg: 45},
	}

	_, err := NewFromGenerators(generators, "G9")
	require.Error(t, err)

	repo, err := NewFromGenerators(generators, "G1")
	require.NoError(t, err)

	ctx := context.Background()
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list[0] = nil
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, again[0])

	g, err := repo.FindByID(ctx, "G2")
	require.NoError(t, err)
	assert.InDelta(t, 45.0, g.CurrentLoadKg, 1e-9)

	_, err = repo.FindByID(ctx, "G99")
	assert.ErrorIs(t, err, repository.ErrGeneratorNotFound)
}
