package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	ClientId       uuid.UUID            `json:"client_id" validate:"required"`
	SubscriptionId *uuid.UUID           `json:"subscription_id"`
	Date           string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate        string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Items          []InvoiceItemRequest `json:"items" validate:"dive"`
	Notes          string               `json:"notes"`
}

type UpdateInvoiceRequest struct {
	Id      uuid.UUID
	Date    *string              `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate *string              `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Items   []InvoiceItemRequest `json:"items" validate:"omitempty,dive"`
	Status  *string              `json:"status" validate:"omitempty,oneof=unpaid partial paid"`
	Notes   *string              `json:"notes"`
}

type ListInvoicesRequest struct {
	ClientId string `query:"client_id" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=unpaid partial paid"`
}

type InvoiceItemResponse struct {
	Description      string          `json:"description"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	Total            decimal.Decimal `json:"total"`
	TotalDisplay     string          `json:"total_display"`
}

type InvoiceResponse struct {
	Id                 uuid.UUID             `json:"id"`
	Number             string                `json:"number"`
	ClientId           uuid.UUID             `json:"client_id"`
	SubscriptionId     *uuid.UUID            `json:"subscription_id"`
	Date               string                `json:"date"`
	DueDate            string                `json:"due_date"`
	Items              []InvoiceItemResponse `json:"items"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	TotalAmountDisplay string                `json:"total_amount_display"`
	Status             string                `json:"status"`
	Notes              string                `json:"notes"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

type ReceiptLineResponse struct {
	Payment        *PaymentResponse `json:"payment"`
	Balance        decimal.Decimal  `json:"balance"`
	BalanceDisplay string           `json:"balance_display"`
}

type ReceiptResponse struct {
	Subscription           *SubscriptionResponse `json:"subscription"`
	Client                 *ClientResponse       `json:"client"`
	DurationName           string                `json:"duration_name"`
	Lines                  []ReceiptLineResponse `json:"lines"`
	TotalAmount            decimal.Decimal       `json:"total_amount"`
	TotalAmountDisplay     string                `json:"total_amount_display"`
	PaidAmount             decimal.Decimal       `json:"paid_amount"`
	PaidAmountDisplay      string                `json:"paid_amount_display"`
	RemainingAmount        decimal.Decimal       `json:"remaining_amount"`
	RemainingAmountDisplay string                `json:"remaining_amount_display"`
}
