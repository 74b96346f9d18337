package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InstallerRepository interface {
	Create(ctx context.Context, installer *entity.Installer) error
	Update(ctx context.Context, installer *entity.Installer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Installer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Installer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
