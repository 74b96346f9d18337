package implementation

import (
	"context"
	"errors"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/mapper"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/internal/repository/contract"
	"gps-tracking-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) contract.InvoiceRepository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.Id == uuid.Nil {
		invoice.Id = uuid.New()
	}
	m, err := r.mapper.ToModel(invoice)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*invoice = *saved
	return nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, invoice *entity.Invoice) error {
	m, err := r.mapper.ToModel(invoice)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*invoice = *saved
	return nil
}

func (r *InvoiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id).Error
}

func (r *InvoiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	var m model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *InvoiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Invoice, len(models))
	for i, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}

func (r *InvoiceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Invoice{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InvoiceRepositoryImpl) LatestNumber(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("number LIKE ?", prefix+"%").
		Order("LENGTH(number) DESC").
		Order("number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil {
		return "", err
	}
	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}
