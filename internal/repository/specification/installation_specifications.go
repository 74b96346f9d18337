package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDeviceID struct {
	DeviceID uuid.UUID
}

func (s ByDeviceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("device_id = ?", s.DeviceID)
}

type ByInstallerID struct {
	InstallerID uuid.UUID
}

func (s ByInstallerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("installer_id = ?", s.InstallerID)
}

type ByTypeID struct {
	TypeID uuid.UUID
}

func (s ByTypeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type_id = ?", s.TypeID)
}

// StatusNot excludes rows in the given status.
type StatusNot struct {
	Status string
}

func (s StatusNot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", s.Status)
}
