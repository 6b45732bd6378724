package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "oilshare/internal/delivery/context"
	"oilshare/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 30 * time.Second
	localMaxAttempts    = 3
	localRetryDelay     = 200 * time.Millisecond
)

// localHTTPPublisher posts push envelopes straight to the dispatcher worker,
// standing in for a Pub/Sub push subscription during development. Like a
// push subscription it redelivers when the worker answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	retryDelay time.Duration
}

// NewLocalHTTPPublisher creates a publisher targeting the worker push endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		now:        time.Now,
		retryDelay: localRetryDelay,
	}
}

func (p *localHTTPPublisher) PublishCollectionRequest(ctx context.Context, event *service.CollectionRequestEvent) error {
	pushMsg, err := NewPushMessage(event, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	var status int
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		status, err = p.post(ctx, event.RequestID, body)
		if err != nil {
			return err
		}
		if status < http.StatusInternalServerError {
			break
		}

		p.logger.WarnContext(ctx, "[LocalPubSub] Worker asked for redelivery",
			slog.String("collection_id", event.CollectionID),
			slog.Int("status", status),
			slog.Int("attempt", attempt),
		)
		if attempt < localMaxAttempts {
			if err := sleep(ctx, p.retryDelay*time.Duration(attempt)); err != nil {
				return err
			}
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", status)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Collection request delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("collection_id", event.CollectionID),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, requestID string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
