package service

import (
	"context"

	"gps-tracking-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    message.Publisher
}

func NewPublisherService(topicName string, pubSub message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := events.Encode(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())

	return p.pubSub.Publish(p.topicName, msg)
}
