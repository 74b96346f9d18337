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

type InstallerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InstallerMapper
}

func NewInstallerRepository(db *gorm.DB) contract.InstallerRepository {
	return &InstallerRepositoryImpl{
		db:     db,
		mapper: mapper.NewInstallerMapper(),
	}
}

func (r *InstallerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstallerRepositoryImpl) Create(ctx context.Context, installer *entity.Installer) error {
	if installer.Id == uuid.Nil {
		installer.Id = uuid.New()
	}
	m := r.mapper.ToModel(installer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*installer = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstallerRepositoryImpl) Update(ctx context.Context, installer *entity.Installer) error {
	m := r.mapper.ToModel(installer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*installer = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstallerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Installer{}, "id = ?", id).Error
}

func (r *InstallerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Installer, error) {
	var m model.Installer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InstallerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Installer, error) {
	var models []*model.Installer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Installer, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InstallerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Installer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
