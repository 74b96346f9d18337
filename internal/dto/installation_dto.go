package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInstallerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	City  string `json:"city" validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

type UpdateInstallerRequest struct {
	Id    uuid.UUID
	Name  string `json:"name" validate:"required,max=255"`
	City  string `json:"city" validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

type InstallerResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Phone         string    `json:"phone"`
	Installations int64     `json:"installations"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateInstallationRequest struct {
	ClientId    uuid.UUID  `json:"client_id" validate:"required"`
	InstallerId uuid.UUID  `json:"installer_id" validate:"required"`
	DeviceId    uuid.UUID  `json:"device_id" validate:"required"`
	CarId       *uuid.UUID `json:"car_id"`
	Date        string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

type UpdateInstallationRequest struct {
	Id          uuid.UUID
	ClientId    uuid.UUID  `json:"client_id" validate:"required"`
	InstallerId uuid.UUID  `json:"installer_id" validate:"required"`
	DeviceId    uuid.UUID  `json:"device_id" validate:"required"`
	CarId       *uuid.UUID `json:"car_id"`
	Date        string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

type ListInstallationsRequest struct {
	ClientId    string `query:"client_id" validate:"omitempty,uuid"`
	InstallerId string `query:"installer_id" validate:"omitempty,uuid"`
	Status      string `query:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

type InstallationResponse struct {
	Id            uuid.UUID  `json:"id"`
	ClientId      uuid.UUID  `json:"client_id"`
	InstallerId   uuid.UUID  `json:"installer_id"`
	InstallerName string     `json:"installer_name"`
	DeviceId      uuid.UUID  `json:"device_id"`
	DeviceImei    string     `json:"device_imei"`
	CarId         *uuid.UUID `json:"car_id,omitempty"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
