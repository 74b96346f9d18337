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

type PaymentMethodRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMethodMapper
}

func NewPaymentMethodRepository(db *gorm.DB) contract.PaymentMethodRepository {
	return &PaymentMethodRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMethodMapper(),
	}
}

func (r *PaymentMethodRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaymentMethodRepositoryImpl) Create(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	if paymentMethod.Id == uuid.Nil {
		paymentMethod.Id = uuid.New()
	}
	m := r.mapper.ToModel(paymentMethod)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*paymentMethod = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentMethodRepositoryImpl) Update(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	m := r.mapper.ToModel(paymentMethod)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*paymentMethod = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentMethodRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PaymentMethod{}, "id = ?", id).Error
}

func (r *PaymentMethodRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentMethod, error) {
	var m model.PaymentMethod
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentMethodRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentMethod, error) {
	var models []*model.PaymentMethod
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PaymentMethod, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PaymentMethodRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PaymentMethod{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
