// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/entity"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/domain/estimator"
	"oilshare/internal/domain/repository"
	"oilshare/internal/domain/service"
	"oilshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// logisticsService implements the LogisticsUsecase interface.
type logisticsService struct {
	params     estimator.Params
	selfID     string
	generators repository.GeneratorRepository
	sessions   repository.SessionRepository
	planner    service.RoutePlanner
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewLogisticsService is the constructor for logisticsService.
func NewLogisticsService(
	cfg *config.Config,
	generators repository.GeneratorRepository,
	sessions repository.SessionRepository,
	planner service.RoutePlanner,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LogisticsUsecase {
	lc := cfg.Logistics

	return &logisticsService{
		params:     estimatorParams(lc),
		selfID:     lc.SelfID,
		generators: generators,
		sessions:   sessions,
		planner:    planner,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// estimatorParams overlays the configured constants on the reference ones.
func estimatorParams(lc *config.LogisticsConfig) estimator.Params {
	params := estimator.DefaultParams()
	overrides := []struct {
		value  *float64
		target *float64
	}{
		{lc.BaseCostPerUser, &params.BaseCostPerUser},
		{lc.PairEfficiencyFactor, &params.PairEfficiencyFactor},
		{lc.GroupEfficiencyFactor, &params.GroupEfficiencyFactor},
		{lc.CO2PerAdditionalStopKg, &params.CO2PerAdditionalStopKg},
		{lc.AnchorThresholdKg, &params.AnchorThresholdKg},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.target = *o.value
		}
	}

	return params
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *logisticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *logisticsService) ListGenerators(ctx context.Context) ([]*entity.Generator, error) {
	generators, err := srv.generators.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generators")
	}

	return generators, nil
}

func (srv *logisticsService) Estimate(ctx context.Context, generatorIDs []string) (*entity.CollectionOutcome, error) {
	selection := entity.NewSelection(srv.selfID)
	for _, id := range generatorIDs {
		if selection.Contains(id) {
			continue
		}
		if err := srv.ensureGenerator(ctx, id); err != nil {
			return nil, err
		}
		selection.Toggle(id)
	}

	outcome, err := srv.estimate(ctx, selection)
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

func (srv *logisticsService) CreateSession(ctx context.Context) (*usecase.SessionView, error) {
	now := srv.now()
	session := &entity.Session{
		ID:        uuid.New(),
		Selection: entity.NewSelection(srv.selfID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.sessions.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Logistics session created", slog.String("session_id", session.ID.String()))

	return srv.view(ctx, session)
}

func (srv *logisticsService) GetSession(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	session, err := srv.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return srv.view(ctx, session)
}

func (srv *logisticsService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessions.DeleteSession(ctx, sessionID); err != nil {
		return srv.sessionError(err, "failed to delete session")
	}

	srv.log(ctx).Info("Logistics session deleted", slog.String("session_id", sessionID.String()))

	return nil
}

func (srv *logisticsService) ToggleGenerator(ctx context.Context, sessionID uuid.UUID, generatorID string) (*usecase.SessionView, error) {
	if err := srv.ensureGenerator(ctx, generatorID); err != nil {
		return nil, err
	}

	var included bool
	session, err := srv.sessions.UpdateSession(ctx, sessionID, func(s *entity.Session) error {
		included = s.Selection.Toggle(generatorID)

		return nil
	})
	if err != nil {
		return nil, srv.sessionError(err, "failed to toggle generator")
	}

	srv.log(ctx).Debug("Generator toggled",
		slog.String("session_id", sessionID.String()),
		slog.String("generator_id", generatorID),
		slog.Bool("included", included),
	)

	return srv.view(ctx, session)
}

func (srv *logisticsService) ResetSession(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	session, err := srv.sessions.UpdateSession(ctx, sessionID, func(s *entity.Session) error {
		s.Selection.Reset()

		return nil
	})
	if err != nil {
		return nil, srv.sessionError(err, "failed to reset session")
	}

	return srv.view(ctx, session)
}

func (srv *logisticsService) PreviewRoute(ctx context.Context, sessionID uuid.UUID) (*entity.RoutePreview, error) {
	session, err := srv.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	registry, err := srv.generators.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generators")
	}

	return srv.planner.Preview(estimator.Resolve(registry, session.Selection)), nil
}

func (srv *logisticsService) RequestCollection(ctx context.Context, sessionID uuid.UUID) (*entity.CollectionRequest, error) {
	session, err := srv.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := srv.estimate(ctx, session.Selection)
	if err != nil {
		return nil, err
	}

	if !outcome.IsViable {
		srv.log(ctx).Info("Collection request rejected, route not viable",
			slog.String("session_id", sessionID.String()),
			slog.Float64("total_kg", outcome.TotalKg),
		)

		return nil, errors.Wrap(domainerrors.ErrRouteNotViable, "request collection")
	}

	registry, err := srv.generators.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generators")
	}

	resolved := estimator.Resolve(registry, session.Selection)
	ids := make([]string, 0, len(resolved))
	for _, g := range resolved {
		ids = append(ids, g.ID)
	}

	request := &entity.CollectionRequest{
		ID:           uuid.New(),
		SessionID:    session.ID,
		SelfID:       session.Selection.SelfID(),
		GeneratorIDs: ids,
		Outcome:      outcome,
		RequestedAt:  srv.now().UTC(),
	}

	event := &service.CollectionRequestEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		CollectionID:   request.ID.String(),
		SessionID:      request.SessionID.String(),
		SelfID:         request.SelfID,
		GeneratorIDs:   request.GeneratorIDs,
		TotalKg:        outcome.TotalKg,
		SavingsUSD:     outcome.SavingsUSD,
		CO2ReductionKg: outcome.CO2ReductionKg,
		RequestedAt:    request.RequestedAt,
	}

	if err := srv.publisher.PublishCollectionRequest(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish collection request",
			slog.String("collection_id", event.CollectionID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrEventPublishFailed.WithDetails(err.Error()), "request collection")
	}

	srv.log(ctx).Info("Collection requested",
		slog.String("collection_id", event.CollectionID),
		slog.Int("stops", outcome.Count),
		slog.Float64("savings_usd", outcome.SavingsUSD),
	)

	return request, nil
}

func (srv *logisticsService) estimate(ctx context.Context, selection *entity.Selection) (entity.CollectionOutcome, error) {
	registry, err := srv.generators.List(ctx)
	if err != nil {
		return entity.CollectionOutcome{}, errors.Wrap(err, "failed to list generators")
	}

	return estimator.Estimate(srv.params, registry, selection), nil
}

func (srv *logisticsService) view(ctx context.Context, session *entity.Session) (*usecase.SessionView, error) {
	outcome, err := srv.estimate(ctx, session.Selection)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionView{
		ID:           session.ID,
		SelfID:       session.Selection.SelfID(),
		GeneratorIDs: session.Selection.IDs(),
		Outcome:      outcome,
		CreatedAt:    session.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    session.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (srv *logisticsService) findSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, srv.sessionError(err, "failed to find session")
	}

	return session, nil
}

// ensureGenerator rejects ids the registry does not know.
func (srv *logisticsService) ensureGenerator(ctx context.Context, generatorID string) error {
	if _, err := srv.generators.FindByID(ctx, generatorID); err != nil {
		if errors.Is(err, repository.ErrGeneratorNotFound) {
			return errors.Wrap(domainerrors.ErrGeneratorNotFound.WithDetails(generatorID), "generator not found")
		}

		return errors.Wrap(err, "failed to find generator")
	}

	return nil
}

func (srv *logisticsService) sessionError(err error, message string) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(domainerrors.ErrSessionNotFound, message)
	}

	return errors.Wrap(err, message)
}
