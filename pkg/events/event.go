package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event defines the contract for all ledger events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PAYMENT_RECORDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New stamps an event with the current UTC time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// Encode serializes any Event as a BaseEvent JSON document so consumers can
// recover the type and timestamp from the message body alone.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Decode(raw []byte) (BaseEvent, error) {
	var e BaseEvent
	if err := json.Unmarshal(raw, &e); err != nil {
		return BaseEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if e.Type == "" {
		return BaseEvent{}, fmt.Errorf("decode event: missing type")
	}
	return e, nil
}
