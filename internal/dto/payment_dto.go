package dto

import (
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Date           string              `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount         decimal.Decimal     `json:"amount" form:"amount"`
	MethodId       uuid.UUID           `json:"method_id" form:"method_id" validate:"required"`
	ClientId       uuid.UUID           `json:"client_id" form:"client_id" validate:"required"`
	SubscriptionId *uuid.UUID          `json:"subscription_id" form:"subscription_id"`
	Status         string              `json:"status" form:"status" validate:"omitempty,oneof=pending paid cancelled"`
	Receipt        *entity.ReceiptFile `json:"-" form:"-"`
}

// UpdatePaymentRequest carries only the fields to change.
type UpdatePaymentRequest struct {
	Id       uuid.UUID
	Date     *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount   *decimal.Decimal `json:"amount"`
	MethodId *uuid.UUID       `json:"method_id"`
	Status   *string          `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
}

type ListPaymentsRequest struct {
	SubscriptionId string `query:"subscription_id" validate:"omitempty,uuid"`
	ClientId       string `query:"client_id" validate:"omitempty,uuid"`
	Status         string `query:"status" validate:"omitempty,oneof=pending paid cancelled"`
	From           string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To             string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type ReceiptFileResponse struct {
	FileName    string `json:"file_name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type PaymentResponse struct {
	Id             uuid.UUID            `json:"id"`
	Date           string               `json:"date"`
	Amount         decimal.Decimal      `json:"amount"`
	AmountDisplay  string               `json:"amount_display"`
	MethodId       uuid.UUID            `json:"method_id"`
	ClientId       uuid.UUID            `json:"client_id"`
	SubscriptionId *uuid.UUID           `json:"subscription_id"`
	Status         string               `json:"status"`
	Reference      string               `json:"reference"`
	Receipt        *ReceiptFileResponse `json:"receipt,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
