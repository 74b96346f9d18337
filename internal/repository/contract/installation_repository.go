package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InstallationRepository interface {
	Create(ctx context.Context, installation *entity.Installation) error
	Update(ctx context.Context, installation *entity.Installation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Installation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Installation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
