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

type DeviceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DeviceMapper
}

func NewDeviceRepository(db *gorm.DB) contract.DeviceRepository {
	return &DeviceRepositoryImpl{
		db:     db,
		mapper: mapper.NewDeviceMapper(),
	}
}

func (r *DeviceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeviceRepositoryImpl) Create(ctx context.Context, device *entity.Device) error {
	if device.Id == uuid.Nil {
		device.Id = uuid.New()
	}
	m := r.mapper.ToModel(device)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*device = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeviceRepositoryImpl) Update(ctx context.Context, device *entity.Device) error {
	m := r.mapper.ToModel(device)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*device = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeviceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Device{}, "id = ?", id).Error
}

func (r *DeviceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Device, error) {
	var m model.Device
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DeviceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Device, error) {
	var models []*model.Device
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Device, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DeviceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Device{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
