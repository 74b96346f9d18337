package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, paymentMethod *entity.PaymentMethod) error
	Update(ctx context.Context, paymentMethod *entity.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentMethod, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
