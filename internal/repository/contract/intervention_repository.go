package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterventionRepository interface {
	Create(ctx context.Context, intervention *entity.Intervention) error
	Update(ctx context.Context, intervention *entity.Intervention) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Intervention, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intervention, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
