package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	ClientId     uuid.UUID `json:"client_id" validate:"required"`
	Brand        string    `json:"brand" validate:"required,max=100"`
	Model        string    `json:"model" validate:"required,max=100"`
	LicensePlate string    `json:"license_plate" validate:"required,max=50"`
	Status       string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCarRequest struct {
	Id           uuid.UUID
	ClientId     uuid.UUID `json:"client_id" validate:"required"`
	Brand        string    `json:"brand" validate:"required,max=100"`
	Model        string    `json:"model" validate:"required,max=100"`
	LicensePlate string    `json:"license_plate" validate:"required,max=50"`
	Status       string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CarResponse struct {
	Id           uuid.UUID `json:"id"`
	ClientId     uuid.UUID `json:"client_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
