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

type InterventionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterventionMapper
}

func NewInterventionRepository(db *gorm.DB) contract.InterventionRepository {
	return &InterventionRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterventionMapper(),
	}
}

func (r *InterventionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterventionRepositoryImpl) Create(ctx context.Context, intervention *entity.Intervention) error {
	if intervention.Id == uuid.Nil {
		intervention.Id = uuid.New()
	}
	m := r.mapper.ToModel(intervention)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*intervention = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterventionRepositoryImpl) Update(ctx context.Context, intervention *entity.Intervention) error {
	m := r.mapper.ToModel(intervention)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*intervention = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterventionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Intervention{}, "id = ?", id).Error
}

func (r *InterventionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Intervention, error) {
	var m model.Intervention
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterventionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intervention, error) {
	var models []*model.Intervention
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Intervention, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InterventionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Intervention{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
