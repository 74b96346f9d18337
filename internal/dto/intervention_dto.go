package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInterventionTypeRequest struct {
	Name            string          `json:"name" validate:"required,max=100"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateInterventionTypeRequest struct {
	Id              uuid.UUID
	Name            string          `json:"name" validate:"required,max=100"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

type InterventionTypeResponse struct {
	Id              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	PriceDisplay    string          `json:"price_display"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreateInterventionRequest struct {
	CarId       uuid.UUID `json:"car_id" validate:"required"`
	TypeId      uuid.UUID `json:"type_id" validate:"required"`
	InstallerId uuid.UUID `json:"installer_id" validate:"required"`
	Date        string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes       string    `json:"notes"`
}

type UpdateInterventionRequest struct {
	Id          uuid.UUID
	CarId       uuid.UUID `json:"car_id" validate:"required"`
	TypeId      uuid.UUID `json:"type_id" validate:"required"`
	InstallerId uuid.UUID `json:"installer_id" validate:"required"`
	Date        string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status      string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes       string    `json:"notes"`
}

type ListInterventionsRequest struct {
	CarId       string `query:"car_id" validate:"omitempty,uuid"`
	InstallerId string `query:"installer_id" validate:"omitempty,uuid"`
	Status      string `query:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

// InterventionResponse carries the type's current price as the amount billed.
type InterventionResponse struct {
	Id           uuid.UUID       `json:"id"`
	CarId        uuid.UUID       `json:"car_id"`
	TypeId       uuid.UUID       `json:"type_id"`
	TypeName     string          `json:"type_name"`
	InstallerId  uuid.UUID       `json:"installer_id"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
