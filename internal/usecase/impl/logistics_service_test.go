package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/entity"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/domain/estimator"
	"oilshare/internal/domain/repository"
	"oilshare/internal/domain/service"
	"oilshare/internal/infra/persistence/memory"
	"oilshare/internal/infra/registry"
	"oilshare/internal/infra/route"
	mockRepo "oilshare/internal/mocks/repository"
	mockService "oilshare/internal/mocks/service"
	"oilshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// logisticsServiceFixtures holds all test dependencies for logistics service tests.
type logisticsServiceFixtures struct {
	service   usecase.LogisticsUsecase
	sessions  *memory.SessionStore
	publisher *mockService.MockEventPublisher
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 {
	return &v
}

func testConfig() *config.Config {
	return &config.Config{
		Logistics: &config.LogisticsConfig{
			SelfID:                 "G1",
			BaseCostPerUser:        floatPtr(25),
			PairEfficiencyFactor:   floatPtr(0.85),
			GroupEfficiencyFactor:  floatPtr(0.70),
			CO2PerAdditionalStopKg: floatPtr(2.5),
			AnchorThresholdKg:      floatPtr(20),
			MinutesPerStop:         15,
			SessionTTL:             30 * time.Minute,
			Depot:                  config.DepotConfig{ID: "DEPOT", Name: "Collection Center", Lat: 50, Lng: 50},
		},
	}
}

func testGenerators() []*entity.Generator {
	return []*entity.Generator{
		{ID: "G1", Name: "Your Restaurant (You)", CurrentLoadKg: 12, WasteType: entity.WasteTypeUCO, Lat: 50, Lng: 45},
		{ID: "G2", Name: "La Mia Pizzeria", CurrentLoadKg: 45, WasteType: entity.WasteTypeUCO, Lat: 40, Lng: 35},
		{ID: "G3", Name: "Burger & Beer", CurrentLoadKg: 15, WasteType: entity.WasteTypeUCO, Lat: 60, Lng: 55},
		{ID: "G4", Name: "Grand Plaza Hotel", CurrentLoadKg: 120, WasteType: entity.WasteTypeFOG, Lat: 20, Lng: 80},
	}
}

func createTestLogisticsService(t *testing.T) logisticsServiceFixtures {
	t.Helper()

	cfg := testConfig()
	generators, err := registry.NewFromGenerators(testGenerators(), cfg.Logistics.SelfID)
	require.NoError(t, err)

	sessions := memory.NewSessionStore(cfg.Logistics.SessionTTL, time.Now)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewLogisticsService(cfg, generators, sessions, route.NewPlanner(cfg), publisher, testLogger())

	return logisticsServiceFixtures{
		service:   svc,
		sessions:  sessions,
		publisher: publisher,
	}
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestLogisticsService_ListGenerators(t *testing.T) {
	fx := createTestLogisticsService(t)

	generators, err := fx.service.ListGenerators(context.Background())
	require.NoError(t, err)
	assert.Len(t, generators, 4)
	assert.Equal(t, "G1", generators[0].ID)
}

func TestLogisticsService_Estimate(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	outcome, err := fx.service.Estimate(ctx, []string{"G2", "G4", "G2", "G1"})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Count)
	assert.InDelta(t, 177.0, outcome.TotalKg, 1e-9)
	assert.InDelta(t, 22.5, outcome.SavingsUSD, 1e-9)
	assert.InDelta(t, 5.0, outcome.CO2ReductionKg, 1e-9)
	assert.True(t, outcome.IsViable)

	outcome, err = fx.service.Estimate(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Count)
	assert.False(t, outcome.IsViable)

	_, err = fx.service.Estimate(ctx, []string{"G99"})
	requireAppError(t, err, "GENERATOR_NOT_FOUND")
}

func TestEstimatorParams(t *testing.T) {
	tests := []struct {
		name string
		lc   *config.LogisticsConfig
		want estimator.Params
	}{
		{
			name: "unset keys keep reference values",
			lc:   &config.LogisticsConfig{SelfID: "G1"},
			want: estimator.DefaultParams(),
		},
		{
			name: "explicit zero is honored",
			lc: &config.LogisticsConfig{
				SelfID:                 "G1",
				CO2PerAdditionalStopKg: floatPtr(0),
				AnchorThresholdKg:      floatPtr(0),
			},
			want: estimator.Params{
				BaseCostPerUser:        estimator.DefaultBaseCostPerUser,
				PairEfficiencyFactor:   estimator.DefaultPairEfficiencyFactor,
				GroupEfficiencyFactor:  estimator.DefaultGroupEfficiencyFactor,
				CO2PerAdditionalStopKg: 0,
				AnchorThresholdKg:      0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimatorParams(tt.lc))
		})
	}
}

func TestLogisticsService_Estimate_ZeroCO2Factor(t *testing.T) {
	cfg := testConfig()
	cfg.Logistics.CO2PerAdditionalStopKg = floatPtr(0)
	generators, err := registry.NewFromGenerators(testGenerators(), cfg.Logistics.SelfID)
	require.NoError(t, err)

	svc := NewLogisticsService(cfg, generators, memory.NewSessionStore(time.Minute, time.Now), route.NewPlanner(cfg), mockService.NewMockEventPublisher(t), testLogger())

	outcome, err := svc.Estimate(context.Background(), []string{"G2", "G4"})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Count)
	assert.InDelta(t, 0.0, outcome.CO2ReductionKg, 1e-9)
	assert.InDelta(t, 75.0*0.30, outcome.SavingsUSD, 1e-9)
}

func TestLogisticsService_SessionLifecycle(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, created.GeneratorIDs)
	assert.Equal(t, "G1", created.SelfID)
	assert.False(t, created.Outcome.IsViable)

	view, err := fx.service.ToggleGenerator(ctx, created.ID, "G2")
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2"}, view.GeneratorIDs)
	assert.InDelta(t, 7.5, view.Outcome.SavingsUSD, 1e-9)
	assert.True(t, view.Outcome.IsViable)

	view, err = fx.service.ToggleGenerator(ctx, created.ID, "G4")
	require.NoError(t, err)
	assert.InDelta(t, 22.5, view.Outcome.SavingsUSD, 1e-9)

	// Self cannot be removed
	view, err = fx.service.ToggleGenerator(ctx, created.ID, "G1")
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2", "G4"}, view.GeneratorIDs)

	view, err = fx.service.ToggleGenerator(ctx, created.ID, "G2")
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G4"}, view.GeneratorIDs)

	got, err := fx.service.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, view.GeneratorIDs, got.GeneratorIDs)

	view, err = fx.service.ResetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, view.GeneratorIDs)

	require.NoError(t, fx.service.DeleteSession(ctx, created.ID))
	_, err = fx.service.GetSession(ctx, created.ID)
	requireAppError(t, err, "SESSION_NOT_FOUND")
}

func TestLogisticsService_SessionsAreIsolated(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	first, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	second, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)

	_, err = fx.service.ToggleGenerator(ctx, first.ID, "G4")
	require.NoError(t, err)

	got, err := fx.service.GetSession(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, got.GeneratorIDs)
}

func TestLogisticsService_ToggleGenerator_Errors(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)

	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G99")
	requireAppError(t, err, "GENERATOR_NOT_FOUND")

	got, err := fx.service.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, got.GeneratorIDs)

	_, err = fx.service.ToggleGenerator(ctx, uuid.New(), "G2")
	requireAppError(t, err, "SESSION_NOT_FOUND")

	_, err = fx.service.ResetSession(ctx, uuid.New())
	requireAppError(t, err, "SESSION_NOT_FOUND")

	err = fx.service.DeleteSession(ctx, uuid.New())
	requireAppError(t, err, "SESSION_NOT_FOUND")
}

func TestLogisticsService_PreviewRoute(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G4")
	require.NoError(t, err)

	preview, err := fx.service.PreviewRoute(ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, preview.Points, 3)
	assert.Equal(t, "G1", preview.Points[0].ID)
	assert.Equal(t, "G4", preview.Points[1].ID)
	assert.Equal(t, entity.RoutePointDepot, preview.Points[2].Type)
	assert.Equal(t, 2, preview.Stops)
	assert.Equal(t, 45, preview.EstimatedMinutes)

	_, err = fx.service.PreviewRoute(ctx, uuid.New())
	requireAppError(t, err, "SESSION_NOT_FOUND")
}

func TestLogisticsService_RequestCollection(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G2")
	require.NoError(t, err)
	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G4")
	require.NoError(t, err)

	var published *service.CollectionRequestEvent
	fx.publisher.EXPECT().
		PublishCollectionRequest(ctx, mock.AnythingOfType("*service.CollectionRequestEvent")).
		Run(func(_ context.Context, event *service.CollectionRequestEvent) {
			published = event
		}).
		Return(nil).
		Once()

	request, err := fx.service.RequestCollection(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, request.SessionID)
	assert.Equal(t, []string{"G1", "G2", "G4"}, request.GeneratorIDs)
	assert.Equal(t, 3, request.Outcome.Count)

	require.NotNil(t, published)
	assert.Equal(t, "req-42", published.RequestID)
	assert.Equal(t, request.ID.String(), published.CollectionID)
	assert.Equal(t, "G1", published.SelfID)
	assert.InDelta(t, 177.0, published.TotalKg, 1e-9)
	assert.InDelta(t, 22.5, published.SavingsUSD, 1e-9)
	assert.InDelta(t, 5.0, published.CO2ReductionKg, 1e-9)
}

func TestLogisticsService_RequestCollection_NotViable(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G3")
	require.NoError(t, err)

	_, err = fx.service.RequestCollection(ctx, created.ID)
	requireAppError(t, err, "ROUTE_NOT_VIABLE")

	fx.publisher.AssertNotCalled(t, "PublishCollectionRequest", mock.Anything, mock.Anything)
}

func TestLogisticsService_RequestCollection_PublishFailure(t *testing.T) {
	fx := createTestLogisticsService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSession(ctx)
	require.NoError(t, err)
	_, err = fx.service.ToggleGenerator(ctx, created.ID, "G4")
	require.NoError(t, err)

	fx.publisher.EXPECT().
		PublishCollectionRequest(ctx, mock.Anything).
		Return(errors.New("topic unavailable"))

	_, err = fx.service.RequestCollection(ctx, created.ID)
	requireAppError(t, err, "EVENT_PUBLISH_FAILED")
}

func TestLogisticsService_RegistryFailure(t *testing.T) {
	ctx := context.Background()
	generators := mockRepo.NewMockGeneratorRepository(t)
	sessions := mockRepo.NewMockSessionRepository(t)
	planner := mockService.NewMockRoutePlanner(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewLogisticsService(testConfig(), generators, sessions, planner, publisher, testLogger())

	sessionID := uuid.New()
	sessions.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, Selection: entity.NewSelection("G1")}, nil)
	generators.EXPECT().
		List(ctx).
		Return(nil, errors.New("registry unavailable"))

	_, err := svc.PreviewRoute(ctx, sessionID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list generators")

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestLogisticsService_SessionStoreFailure(t *testing.T) {
	ctx := context.Background()
	generators := mockRepo.NewMockGeneratorRepository(t)
	sessions := mockRepo.NewMockSessionRepository(t)

	svc := NewLogisticsService(testConfig(), generators, sessions, mockService.NewMockRoutePlanner(t), mockService.NewMockEventPublisher(t), testLogger())

	sessionID := uuid.New()
	generators.EXPECT().
		FindByID(ctx, "G2").
		Return(&entity.Generator{ID: "G2"}, nil)
	sessions.EXPECT().
		UpdateSession(ctx, sessionID, mock.Anything).
		Return(nil, repository.ErrSessionNotFound)

	_, err := svc.ToggleGenerator(ctx, sessionID, "G2")
	requireAppError(t, err, "SESSION_NOT_FOUND")

	sessions.EXPECT().
		CreateSession(ctx, mock.Anything).
		Return(errors.New("store closed"))

	_, err = svc.CreateSession(ctx)
	assert.ErrorContains(t, err, "failed to create session")
}
