package service

import (
	"context"

	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/samber/lo"
)

// EventForwarder ships a ledger event to an external bus.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     message.Subscriber
	topicName  string
	audit      logger.ILogger
	forwarders []EventForwarder
}

// NewConsumerService drains the in-process ledger topic into the audit log and
// hands every event to each non-nil forwarder.
func NewConsumerService(
	pubSub message.Subscriber,
	topicName string,
	audit logger.ILogger,
	forwarders ...EventForwarder,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		audit:      audit,
		forwarders: lo.Filter(forwarders, func(f EventForwarder, _ int) bool { return f != nil }),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	evt, err := events.Decode(msg.Payload)
	if err != nil {
		cs.audit.Error("LEDGER_EVENT", "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	details := make(map[string]interface{}, len(evt.Data)+2)
	for k, v := range evt.Data {
		details[k] = v
	}
	details["event_type"] = evt.Type
	details["occurred_at"] = evt.OccurredAt
	cs.audit.Info("LEDGER_EVENT", evt.Type, details)

	for _, forwarder := range cs.forwarders {
		if err := forwarder.Publish(ctx, evt); err != nil {
			cs.audit.Warn("LEDGER_EVENT", "Failed to forward event", map[string]interface{}{
				"event_type": evt.Type,
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
