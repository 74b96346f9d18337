package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	TotalClients         int64              `json:"total_clients"`
	ActiveClients        int64              `json:"active_clients"`
	TotalCars            int64              `json:"total_cars"`
	ActiveSubscriptions  int64              `json:"active_subscriptions"`
	ExpiringSoon         int64              `json:"expiring_soon"`
	ExpiredSubscriptions int64              `json:"expired_subscriptions"`
	Revenue              decimal.Decimal    `json:"revenue"`
	RevenueDisplay       string             `json:"revenue_display"`
	Outstanding          decimal.Decimal    `json:"outstanding"`
	OutstandingDisplay   string             `json:"outstanding_display"`
	UnpaidInvoices       int64              `json:"unpaid_invoices"`
	OverdueInvoices      int64              `json:"overdue_invoices"`
	RecentPayments       []*PaymentResponse `json:"recent_payments"`
}
