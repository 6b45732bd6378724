package pubsub

import (
	"context"
	"log/slog"

	"oilshare/config"
	"oilshare/internal/domain/constants"
	"oilshare/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherFactory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

var publisherFactories = map[string]publisherFactory{
	constants.PubSubProviderLocal:  newLocalFromConfig,
	constants.PubSubProviderGoogle: newGoogleFromConfig,
}

// NewEventPublisher picks the publisher for pubsub.provider. Without a
// provider collection requests are accepted but never dispatched.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, collection requests will not be dispatched")

		return &noopPublisher{logger: logger}, nil
	}

	factory, ok := publisherFactories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := factory(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newLocalFromConfig(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("local endpoint is required for local provider")
	}
	logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func newGoogleFromConfig(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}
	if cfg.TopicID == "" {
		return nil, errors.New("topic ID is required for google provider")
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// noopPublisher drops events when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCollectionRequest(ctx context.Context, event *service.CollectionRequestEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("collection_id", event.CollectionID),
		slog.Any("generator_ids", event.GeneratorIDs),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
