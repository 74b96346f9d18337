package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeviceRequest struct {
	Imei     string `json:"imei" validate:"required,len=15,number"`
	Model    string `json:"model" validate:"omitempty,max=100"`
	Provider string `json:"provider" validate:"omitempty,max=100"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateDeviceRequest struct {
	Id       uuid.UUID
	Imei     string `json:"imei" validate:"required,len=15,number"`
	Model    string `json:"model" validate:"omitempty,max=100"`
	Provider string `json:"provider" validate:"omitempty,max=100"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ListDevicesRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=active inactive"`
}

type DeviceResponse struct {
	Id        uuid.UUID `json:"id"`
	Imei      string    `json:"imei"`
	Model     string    `json:"model"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Installed bool      `json:"installed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
