package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/constants"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"
	"oilshare/internal/domain/service"
	"oilshare/internal/infra/pubsub"
	mockRepo "oilshare/internal/mocks/repository"
	mockService "oilshare/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixtures struct {
	handler    *PushHandler
	generators *mockRepo.MockGeneratorRepository
	planner    *mockService.MockRoutePlanner
}

func createTestPushHandler(t *testing.T, cfg *config.Config) *pushFixtures {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	fx := &pushFixtures{
		generators: mockRepo.NewMockGeneratorRepository(t),
		planner:    mockService.NewMockRoutePlanner(t),
	}
	fx.handler = NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		GeneratorRepo: fx.generators,
		Planner:       fx.planner,
	})

	return fx
}

func testEvent(ids ...string) *service.CollectionRequestEvent {
	return &service.CollectionRequestEvent{
		RequestID:    "req-7",
		CollectionID: "c-1",
		SessionID:    "s-1",
		SelfID:       "G1",
		GeneratorIDs: ids,
		TotalKg:      132,
		RequestedAt:  time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *service.CollectionRequestEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, time.Now())
	require.NoError(t, err)
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(data)
}

func (fx *pushFixtures) push(body string, header http.Header) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = fx.handler.HandlePush(c)

	return rec.Code
}

func TestPushHandler_Dispatches(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	g1 := &entity.Generator{ID: "G1", CurrentLoadKg: 12}
	g4 := &entity.Generator{ID: "G4", CurrentLoadKg: 120}

	fx.generators.EXPECT().FindByID(mock.Anything, "G1").
		Run(func(ctx context.Context, _ string) {
			assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
		}).Return(g1, nil).Once()
	fx.generators.EXPECT().FindByID(mock.Anything, "G4").Return(g4, nil).Once()
	fx.planner.EXPECT().Preview([]*entity.Generator{g1, g4}).Return(&entity.RoutePreview{
		Path: []entity.RoutePoint{{ID: "G1"}, {ID: "G4"}, {ID: "DEPOT"}},
		ETA:  "45 min",
	}).Once()

	assert.Equal(t, http.StatusOK, fx.push(pushBody(t, testEvent("G1", "G4")), nil))
}

func TestPushHandler_PlanCollection(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	g2 := &entity.Generator{ID: "G2"}

	fx.generators.EXPECT().FindByID(mock.Anything, "G2").Return(g2, nil).Once()
	fx.generators.EXPECT().FindByID(mock.Anything, "G9").Return(nil, repository.ErrGeneratorNotFound).Once()
	fx.planner.EXPECT().Preview([]*entity.Generator{g2}).Return(&entity.RoutePreview{
		Path: []entity.RoutePoint{{ID: "DEPOT"}, {ID: "G2"}},
	}).Once()

	plan, err := fx.handler.planCollection(context.Background(), testEvent("G2", "G9"))

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "c-1", plan.CollectionID)
	assert.Equal(t, []string{"DEPOT", "G2"}, plan.Stops)
	assert.Equal(t, []string{"G9"}, plan.Missing)
}

func TestPushHandler_Responses(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(fx *pushFixtures)
		wantStatus int
	}{
		{
			name:       "malformed envelope",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not an event",
			body:       func(*testing.T) string { return `{"message":{"data":"bm90IGpzb24="}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty request is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, testEvent()) },
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown generators are acknowledged",
			body: func(t *testing.T) string { return pushBody(t, testEvent("G9")) },
			setup: func(fx *pushFixtures) {
				fx.generators.EXPECT().FindByID(mock.Anything, "G9").Return(nil, repository.ErrGeneratorNotFound).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "registry failure is retried",
			body: func(t *testing.T) string { return pushBody(t, testEvent("G1")) },
			setup: func(fx *pushFixtures) {
				fx.generators.EXPECT().FindByID(mock.Anything, "G1").Return(nil, errors.New("registry unavailable")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, nil)
			if tt.setup != nil {
				tt.setup(fx)
			}

			assert.Equal(t, tt.wantStatus, fx.push(tt.body(t), nil))
		})
	}
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	event := testEvent("G1")
	event.RequestID = ""
	msg, err := pubsub.NewPushMessage(event, time.Now())
	require.NoError(t, err)
	msg.Message.Attributes[pubsub.AttrRequestID] = "attr-req"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	fx.generators.EXPECT().FindByID(mock.Anything, "G1").
		Run(func(ctx context.Context, _ string) {
			assert.Equal(t, "attr-req", deliverycontext.GetRequestIDFromContext(ctx))
		}).Return(nil, repository.ErrGeneratorNotFound).Once()

	assert.Equal(t, http.StatusOK, fx.push(string(body), nil))
}

func TestPushHandler_VerifyAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", validErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong issuer",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, cfg)
			require.True(t, fx.handler.verifyPushAuth)
			fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return tt.payload, nil
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.wantStatus, fx.push(pushBody(t, testEvent()), header))
		})
	}
}

func TestPushHandler_Audience(t *testing.T) {
	tests := []struct {
		name       string
		dispatcher *config.DispatcherConfig
		want       string
	}{
		{name: "derived from request", want: "http://example.com/push"},
		{name: "derived when blank", dispatcher: &config.DispatcherConfig{PushAudience: "  "}, want: "http://example.com/push"},
		{
			name:       "configured",
			dispatcher: &config.DispatcherConfig{PushAudience: "https://dispatcher.example.run.app/push"},
			want:       "https://dispatcher.example.run.app/push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				PubSub:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
				Dispatcher: tt.dispatcher,
			}
			cfg.Env.Env = constants.EnvProduction

			fx := createTestPushHandler(t, cfg)
			var got string
			fx.handler.validateToken = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				got = audience

				return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
			}

			header := http.Header{}
			header.Set("Authorization", "Bearer ok")

			assert.Equal(t, http.StatusOK, fx.push(pushBody(t, testEvent()), header))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPushHandler_SkipsAuthInDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	fx := createTestPushHandler(t, cfg)

	assert.False(t, fx.handler.verifyPushAuth)
	assert.Equal(t, http.StatusOK, fx.push(pushBody(t, testEvent()), nil))
}
