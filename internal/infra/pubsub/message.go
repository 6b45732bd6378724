package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"oilshare/internal/domain/constants"
	"oilshare/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys
const (
	AttrEventType    = "event_type"
	AttrCollectionID = "collection_id"
	AttrSessionID    = "session_id"
	AttrRequestID    = "request_id"
)

const localSubscription = "projects/local/subscriptions/collection-requests-sub"

// PushMessage is the envelope Google Pub/Sub posts to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event the way the push subscription delivers it.
func NewPushMessage(event *service.CollectionRequestEvent, publishTime time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.CollectionID
	msg.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the collection request carried by a push message.
func (m *PushMessage) DecodeEvent() (*service.CollectionRequestEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 message data")
	}

	var event service.CollectionRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal collection request event")
	}

	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[AttrRequestID]
	}

	return &event, nil
}

// eventAttributes are used for subscription filtering and tracing
func eventAttributes(event *service.CollectionRequestEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType:    constants.EventTypeCollectionRequested,
		AttrCollectionID: event.CollectionID,
		AttrSessionID:    event.SessionID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
