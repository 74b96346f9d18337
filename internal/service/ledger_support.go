package service

import (
	"context"
	"time"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/events"
	"gps-tracking-be/pkg/ledger"

	"github.com/google/uuid"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

// DurationCatalog serves the subscription duration list used for pricing.
type DurationCatalog interface {
	Catalog(ctx context.Context) ([]*entity.SubscriptionDuration, error)
}

func emit(ctx context.Context, publisher IPublisherService, log logger.ILogger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn("EVENTS", "Failed to publish ledger event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func parseDateOr(field, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := ledger.ParseDate(value)
	if err != nil {
		return time.Time{}, apperror.Validation("%s must be a date formatted as YYYY-MM-DD", field)
	}
	return t, nil
}

func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, apperror.Validation("%s must be a UUID", field)
	}
	return &id, nil
}

// refreshSubscriptionBalance rewrites remaining amount and payment status of a
// subscription from the payments visible to uow. A deleted subscription is
// skipped; its payments are kept on purpose.
func refreshSubscriptionBalance(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	catalog []*entity.SubscriptionDuration,
	subscriptionId uuid.UUID,
) (*entity.Subscription, ledger.Balance, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subscriptionId})
	if err != nil {
		return nil, ledger.Balance{}, apperror.Storage(err, "find subscription")
	}
	if sub == nil {
		return nil, ledger.Balance{}, nil
	}

	payments, err := uow.PaymentRepository().FindAll(ctx, specification.BySubscriptionID{SubscriptionID: sub.Id})
	if err != nil {
		return nil, ledger.Balance{}, apperror.Storage(err, "list subscription payments")
	}

	duration, _ := ledger.FindDuration(catalog, sub.DurationId)
	balance := ledger.ComputeBalance(sub, duration, payments)
	ledger.Apply(sub, balance)

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, ledger.Balance{}, apperror.Storage(err, "update subscription balance")
	}
	return sub, balance, nil
}
