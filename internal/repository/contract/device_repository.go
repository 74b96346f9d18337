package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	Update(ctx context.Context, device *entity.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Device, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Device, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
