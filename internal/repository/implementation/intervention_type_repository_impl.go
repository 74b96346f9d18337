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

type InterventionTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterventionTypeMapper
}

func NewInterventionTypeRepository(db *gorm.DB) contract.InterventionTypeRepository {
	return &InterventionTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterventionTypeMapper(),
	}
}

func (r *InterventionTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterventionTypeRepositoryImpl) Create(ctx context.Context, interventionType *entity.InterventionType) error {
	if interventionType.Id == uuid.Nil {
		interventionType.Id = uuid.New()
	}
	m := r.mapper.ToModel(interventionType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interventionType = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterventionTypeRepositoryImpl) Update(ctx context.Context, interventionType *entity.InterventionType) error {
	m := r.mapper.ToModel(interventionType)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*interventionType = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterventionTypeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InterventionType{}, "id = ?", id).Error
}

func (r *InterventionTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterventionType, error) {
	var m model.InterventionType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterventionTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterventionType, error) {
	var models []*model.InterventionType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InterventionType, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InterventionTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InterventionType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
