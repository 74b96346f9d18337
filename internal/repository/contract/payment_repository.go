package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
}
