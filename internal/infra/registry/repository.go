package registry

import (
	"context"
	"log/slog"

	"oilshare/config"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSource = "generators.csv"

type generatorRepository struct {
	generators []*entity.Generator
	byID       map[string]*entity.Generator
}

// Params defines the dependencies of the registry repository
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the configured catalog and returns a read-only repository over it.
func New(params Params) (repository.GeneratorRepository, error) {
	source := defaultSource
	if params.Config.Registry != nil && params.Config.Registry.Source != "" {
		source = params.Config.Registry.Source
	}

	path, err := config.ResolvePath(source, config.SearchPaths()...)
	if err != nil {
		return nil, errors.Wrap(err, "resolve generator registry")
	}

	generators, err := Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load generator registry %s", path)
	}

	repo, err := NewFromGenerators(generators, params.Config.Logistics.SelfID)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Generator registry loaded",
		slog.String("path", path),
		slog.Int("generators", len(generators)),
	)

	return repo, nil
}

// NewFromGenerators builds the repository from an in-memory catalog.
// The self generator must be part of the catalog.
func NewFromGenerators(generators []*entity.Generator, selfID string) (repository.GeneratorRepository, error) {
	byID := make(map[string]*entity.Generator, len(generators))
	for _, g := range generators {
		byID[g.ID] = g
	}

	if _, ok := byID[selfID]; !ok {
		return nil, errors.Errorf("self generator %q is not in the registry", selfID)
	}

	return &generatorRepository{
		generators: generators,
		byID:       byID,
	}, nil
}

func (r *generatorRepository) List(_ context.Context) ([]*entity.Generator, error) {
	out := make([]*entity.Generator, len(r.generators))
	copy(out, r.generators)

	return out, nil
}

func (r *generatorRepository) FindByID(_ context.Context, id string) (*entity.Generator, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrGeneratorNotFound
	}

	return g, nil
}
