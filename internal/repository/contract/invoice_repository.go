package contract

import (
	"context"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// LatestNumber returns the highest invoice number starting with prefix, or "" when none exist.
	LatestNumber(ctx context.Context, prefix string) (string, error)
}
