package mapper

import (
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/model"
)

type DeviceMapper struct{}

func NewDeviceMapper() *DeviceMapper {
	return &DeviceMapper{}
}

func (m *DeviceMapper) ToEntity(d *model.Device) *entity.Device {
	if d == nil {
		return nil
	}
	return &entity.Device{
		Id:        d.Id,
		Imei:      d.Imei,
		Model:     d.Model,
		Provider:  d.Provider,
		Status:    entity.DeviceStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (m *DeviceMapper) ToModel(d *entity.Device) *model.Device {
	if d == nil {
		return nil
	}
	return &model.Device{
		Id:        d.Id,
		Imei:      d.Imei,
		Model:     d.Model,
		Provider:  d.Provider,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type InstallerMapper struct{}

func NewInstallerMapper() *InstallerMapper {
	return &InstallerMapper{}
}

func (m *InstallerMapper) ToEntity(i *model.Installer) *entity.Installer {
	if i == nil {
		return nil
	}
	return &entity.Installer{
		Id:        i.Id,
		Name:      i.Name,
		City:      i.City,
		Phone:     i.Phone,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (m *InstallerMapper) ToModel(i *entity.Installer) *model.Installer {
	if i == nil {
		return nil
	}
	return &model.Installer{
		Id:        i.Id,
		Name:      i.Name,
		City:      i.City,
		Phone:     i.Phone,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type InstallationMapper struct{}

func NewInstallationMapper() *InstallationMapper {
	return &InstallationMapper{}
}

func (m *InstallationMapper) ToEntity(i *model.Installation) *entity.Installation {
	if i == nil {
		return nil
	}
	return &entity.Installation{
		Id:          i.Id,
		ClientId:    i.ClientId,
		InstallerId: i.InstallerId,
		DeviceId:    i.DeviceId,
		CarId:       i.CarId,
		Date:        i.Date,
		Status:      entity.InstallationStatus(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (m *InstallationMapper) ToModel(i *entity.Installation) *model.Installation {
	if i == nil {
		return nil
	}
	return &model.Installation{
		Id:          i.Id,
		ClientId:    i.ClientId,
		InstallerId: i.InstallerId,
		DeviceId:    i.DeviceId,
		CarId:       i.CarId,
		Date:        i.Date,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

type InterventionTypeMapper struct{}

func NewInterventionTypeMapper() *InterventionTypeMapper {
	return &InterventionTypeMapper{}
}

func (m *InterventionTypeMapper) ToEntity(t *model.InterventionType) *entity.InterventionType {
	if t == nil {
		return nil
	}
	return &entity.InterventionType{
		Id:              t.Id,
		Name:            t.Name,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		Price:           t.Price,
		Status:          entity.InterventionTypeStatus(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *InterventionTypeMapper) ToModel(t *entity.InterventionType) *model.InterventionType {
	if t == nil {
		return nil
	}
	return &model.InterventionType{
		Id:              t.Id,
		Name:            t.Name,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		Price:           t.Price,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type InterventionMapper struct{}

func NewInterventionMapper() *InterventionMapper {
	return &InterventionMapper{}
}

func (m *InterventionMapper) ToEntity(i *model.Intervention) *entity.Intervention {
	if i == nil {
		return nil
	}
	return &entity.Intervention{
		Id:          i.Id,
		CarId:       i.CarId,
		TypeId:      i.TypeId,
		InstallerId: i.InstallerId,
		Date:        i.Date,
		Status:      entity.InterventionStatus(i.Status),
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (m *InterventionMapper) ToModel(i *entity.Intervention) *model.Intervention {
	if i == nil {
		return nil
	}
	return &model.Intervention{
		Id:          i.Id,
		CarId:       i.CarId,
		TypeId:      i.TypeId,
		InstallerId: i.InstallerId,
		Date:        i.Date,
		Status:      string(i.Status),
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
