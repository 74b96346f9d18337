package dto

import (
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSubscriptionRequest struct {
	ClientId   uuid.UUID  `json:"client_id" validate:"required"`
	DurationId uuid.UUID  `json:"duration_id" validate:"required"`
	StartDate  string     `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CarId      *uuid.UUID `json:"car_id"`
}

type UpdateSubscriptionRequest struct {
	Id         uuid.UUID
	DurationId *uuid.UUID `json:"duration_id"`
	StartDate  *string    `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CarId      *uuid.UUID `json:"car_id"`
}

type ListSubscriptionsRequest struct {
	ClientId string `query:"client_id" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=active expired cancelled"`
}

type RenewSubscriptionRequest struct {
	Id          uuid.UUID
	PaymentDate string              `json:"payment_date" form:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Amount      decimal.Decimal     `json:"amount" form:"amount"`
	MethodId    uuid.UUID           `json:"method_id" form:"method_id" validate:"required"`
	Receipt     *entity.ReceiptFile `json:"-" form:"-"`
}

type AddSubscriptionPaymentRequest struct {
	Id       uuid.UUID
	Date     string              `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount   decimal.Decimal     `json:"amount" form:"amount"`
	MethodId uuid.UUID           `json:"method_id" form:"method_id" validate:"required"`
	Receipt  *entity.ReceiptFile `json:"-" form:"-"`
}

type ExpireSubscriptionsRequest struct {
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

type SubscriptionResponse struct {
	Id                     uuid.UUID       `json:"id"`
	ClientId               uuid.UUID       `json:"client_id"`
	DurationId             uuid.UUID       `json:"duration_id"`
	DurationName           string          `json:"duration_name"`
	CarId                  *uuid.UUID      `json:"car_id"`
	StartDate              string          `json:"start_date"`
	EndDate                string          `json:"end_date"`
	Status                 string          `json:"status"`
	PaymentStatus          string          `json:"payment_status"`
	RemainingAmount        decimal.Decimal `json:"remaining_amount"`
	RemainingAmountDisplay string          `json:"remaining_amount_display"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type BalanceResponse struct {
	SubscriptionId   uuid.UUID       `json:"subscription_id"`
	TotalDue         decimal.Decimal `json:"total_due"`
	TotalDueDisplay  string          `json:"total_due_display"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalPaidDisplay string          `json:"total_paid_display"`
	Remaining        decimal.Decimal `json:"remaining"`
	RemainingDisplay string          `json:"remaining_display"`
	PaymentStatus    string          `json:"payment_status"`
}

// SubscriptionPaymentResponse is returned by renew and add-payment.
type SubscriptionPaymentResponse struct {
	Subscription *SubscriptionResponse `json:"subscription"`
	Payment      *PaymentResponse      `json:"payment"`
}

type ExpireSubscriptionsResponse struct {
	AsOf    string      `json:"as_of"`
	Expired []uuid.UUID `json:"expired"`
}
