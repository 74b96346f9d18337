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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create persists the payment row; the transient receipt stays on the caller's entity.
func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.Id == uuid.Nil {
		payment.Id = uuid.New()
	}
	receipt := payment.Receipt
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	payment.Receipt = receipt
	return nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, payment *entity.Payment) error {
	receipt := payment.Receipt
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	payment.Receipt = receipt
	return nil
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Payment{}, "id = ?", id).Error
}

func (r *PaymentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	var m model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	var models []*model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Payment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PaymentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PaymentRepositoryImpl) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	if err := query.Select("SUM(amount)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
