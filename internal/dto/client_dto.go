package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,max=50"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateClientRequest struct {
	Id     uuid.UUID
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,max=50"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ClientResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientBalanceResponse struct {
	ClientId         uuid.UUID       `json:"client_id"`
	TotalDue         decimal.Decimal `json:"total_due"`
	TotalDueDisplay  string          `json:"total_due_display"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalPaidDisplay string          `json:"total_paid_display"`
	Overdue          decimal.Decimal `json:"overdue"`
	OverdueDisplay   string          `json:"overdue_display"`
}
