package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
