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

type DurationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DurationMapper
}

func NewDurationRepository(db *gorm.DB) contract.DurationRepository {
	return &DurationRepositoryImpl{
		db:     db,
		mapper: mapper.NewDurationMapper(),
	}
}

func (r *DurationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DurationRepositoryImpl) Create(ctx context.Context, duration *entity.SubscriptionDuration) error {
	if duration.Id == uuid.Nil {
		duration.Id = uuid.New()
	}
	m := r.mapper.ToModel(duration)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*duration = *r.mapper.ToEntity(m)
	return nil
}

func (r *DurationRepositoryImpl) Update(ctx context.Context, duration *entity.SubscriptionDuration) error {
	m := r.mapper.ToModel(duration)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*duration = *r.mapper.ToEntity(m)
	return nil
}

func (r *DurationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SubscriptionDuration{}, "id = ?", id).Error
}

func (r *DurationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionDuration, error) {
	var m model.SubscriptionDuration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DurationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionDuration, error) {
	var models []*model.SubscriptionDuration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SubscriptionDuration, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DurationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SubscriptionDuration{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
