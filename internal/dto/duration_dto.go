package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDurationRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Months      int             `json:"months" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type UpdateDurationRequest struct {
	Id          uuid.UUID
	Name        string          `json:"name" validate:"required,max=100"`
	Months      int             `json:"months" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type DurationResponse struct {
	Id           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Months       int             `json:"months"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
