package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DurationRepository interface {
	Create(ctx context.Context, duration *entity.SubscriptionDuration) error
	Update(ctx context.Context, duration *entity.SubscriptionDuration) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionDuration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionDuration, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
