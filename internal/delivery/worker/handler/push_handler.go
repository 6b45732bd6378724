package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/constants"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"
	"oilshare/internal/domain/service"
	"oilshare/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks the OIDC token of a push request against the expected audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// DispatchPlan is the pickup route the dispatcher schedules for a collection request
type DispatchPlan struct {
	CollectionID string
	Stops        []string
	Missing      []string
	Route        *entity.RoutePreview
}

// PushHandler handles Pub/Sub push messages carrying collection requests
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  TokenValidator
	logger         *slog.Logger
	generatorRepo  repository.GeneratorRepository
	planner        service.RoutePlanner
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	GeneratorRepo repository.GeneratorRepository
	Planner       service.RoutePlanner
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions outside development carry OIDC tokens
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushAudience string
	if params.Config.Dispatcher != nil {
		pushAudience = strings.TrimSpace(params.Config.Dispatcher.PushAudience)
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   pushAudience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		generatorRepo:  params.GeneratorRepo,
		planner:        params.Planner,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Dispatcher] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Dispatcher] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Dispatcher] Failed to decode collection request", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: event (falls back to message attributes) > X-Request-Id header > new id
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger)
	ctx = deliverycontext.WithLogAttrs(ctx, h.logger, slog.String("collection_id", event.CollectionID))
	reqLogger := deliverycontext.GetLogger(ctx)

	reqLogger.Info("[Dispatcher] Processing collection request",
		slog.String("session_id", event.SessionID),
		slog.Int("generator_count", len(event.GeneratorIDs)),
		slog.Float64("total_kg", event.TotalKg),
	)

	plan, err := h.planCollection(ctx, event)
	if err != nil {
		reqLogger.Error("[Dispatcher] Failed to plan collection",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver, 200 acknowledges poison messages
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	if plan == nil {
		reqLogger.Info("[Dispatcher] Collection request has no generators, nothing to dispatch")

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Dispatcher] Collection dispatched",
		slog.Any("stops", plan.Stops),
		slog.Any("missing", plan.Missing),
		slog.Float64("path_length", plan.Route.PathLength),
		slog.String("eta", plan.Route.ETA),
	)

	return c.NoContent(http.StatusOK)
}

// planCollection resolves the requested generators and builds their route. A request without known generators has no plan.
func (h *PushHandler) planCollection(ctx context.Context, event *service.CollectionRequestEvent) (*DispatchPlan, error) {
	if len(event.GeneratorIDs) == 0 {
		return nil, nil
	}

	plan := &DispatchPlan{CollectionID: event.CollectionID}
	generators := make([]*entity.Generator, 0, len(event.GeneratorIDs))
	for _, id := range event.GeneratorIDs {
		generator, err := h.generatorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGeneratorNotFound) {
				plan.Missing = append(plan.Missing, id)

				continue
			}

			return nil, newRetryableError(errors.WithStack(err))
		}
		generators = append(generators, generator)
	}

	if len(plan.Missing) > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Dispatcher] Generators missing from registry",
			slog.Any("generator_ids", plan.Missing),
		)
	}

	if len(generators) == 0 {
		return nil, nil
	}

	plan.Route = h.planner.Preview(generators)
	plan.Stops = make([]string, 0, len(plan.Route.Path))
	for _, point := range plan.Route.Path {
		plan.Stops = append(plan.Stops, point.ID)
	}

	return plan, nil
}

// audience returns the configured push audience, or the URL of this endpoint as
// seen by the worker. Behind a TLS-terminating proxy the derived scheme is http,
// so deployments there must configure dispatcher.pushAudience.
func (h *PushHandler) audience(req *http.Request) string {
	if h.pushAudience != "" {
		return h.pushAudience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validateToken(req.Context(), token, h.audience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
