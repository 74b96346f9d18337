package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterventionTypeRepository interface {
	Create(ctx context.Context, interventionType *entity.InterventionType) error
	Update(ctx context.Context, interventionType *entity.InterventionType) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterventionType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterventionType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
