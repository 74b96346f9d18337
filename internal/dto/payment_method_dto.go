package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePaymentMethodRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdatePaymentMethodRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type PaymentMethodResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
