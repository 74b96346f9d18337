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

type InstallationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InstallationMapper
}

func NewInstallationRepository(db *gorm.DB) contract.InstallationRepository {
	return &InstallationRepositoryImpl{
		db:     db,
		mapper: mapper.NewInstallationMapper(),
	}
}

func (r *InstallationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstallationRepositoryImpl) Create(ctx context.Context, installation *entity.Installation) error {
	if installation.Id == uuid.Nil {
		installation.Id = uuid.New()
	}
	m := r.mapper.ToModel(installation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*installation = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstallationRepositoryImpl) Update(ctx context.Context, installation *entity.Installation) error {
	m := r.mapper.ToModel(installation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*installation = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstallationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Installation{}, "id = ?", id).Error
}

func (r *InstallationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Installation, error) {
	var m model.Installation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InstallationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Installation, error) {
	var models []*model.Installation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Installation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InstallationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Installation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
