package service

import (
	"context"
	"time"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/ledger"

	"github.com/shopspring/decimal"
)

// ExpiringWindowDays is how far ahead the dashboard looks for subscriptions ending soon.
const ExpiringWindowDays = 30

const recentPaymentsLimit = 5

// isOverdue reports an unpaid invoice whose due date has passed.
func isOverdue(inv *entity.Invoice, today time.Time) bool {
	return inv.Status != entity.InvoiceStatusPaid && inv.DueDate.Before(today)
}

type IDashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    DurationCatalog
	clock      Clock
	currency   string
}

func NewDashboardService(
	uowFactory unitofwork.RepositoryFactory,
	catalog DurationCatalog,
	clock Clock,
	currency string,
) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		catalog:    catalog,
		clock:      clockOrSystem(clock),
		currency:   currency,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	today := ledger.Date(s.clock())
	horizon := today.AddDate(0, 0, ExpiringWindowDays)
	active := specification.ByStatus{Status: string(entity.SubscriptionStatusActive)}
	paid := specification.ByStatus{Status: string(entity.PaymentStatusPaid)}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	res := &dto.DashboardResponse{}

	if res.TotalClients, err = uow.ClientRepository().Count(ctx); err != nil {
		return nil, apperror.Storage(err, "count clients")
	}
	if res.ActiveClients, err = uow.ClientRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.ClientStatusActive)}); err != nil {
		return nil, apperror.Storage(err, "count active clients")
	}
	if res.TotalCars, err = uow.CarRepository().Count(ctx); err != nil {
		return nil, apperror.Storage(err, "count cars")
	}
	if res.ActiveSubscriptions, err = uow.SubscriptionRepository().Count(ctx, active); err != nil {
		return nil, apperror.Storage(err, "count active subscriptions")
	}
	if res.ExpiringSoon, err = uow.SubscriptionRepository().Count(ctx, active,
		specification.DateBetween{Field: "end_date", From: &today, To: &horizon}); err != nil {
		return nil, apperror.Storage(err, "count expiring subscriptions")
	}
	if res.ExpiredSubscriptions, err = uow.SubscriptionRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.SubscriptionStatusExpired)}); err != nil {
		return nil, apperror.Storage(err, "count expired subscriptions")
	}

	if res.Revenue, err = uow.PaymentRepository().SumAmount(ctx, paid); err != nil {
		return nil, apperror.Storage(err, "sum revenue")
	}

	subs, err := uow.SubscriptionRepository().FindAll(ctx)
	if err != nil {
		return nil, apperror.Storage(err, "list subscriptions")
	}
	paidPayments, err := uow.PaymentRepository().FindAll(ctx, paid, specification.HasSubscription{})
	if err != nil {
		return nil, apperror.Storage(err, "list payments")
	}
	res.Outstanding = decimal.Zero
	for _, sub := range subs {
		if sub.Status == entity.SubscriptionStatusCancelled {
			continue
		}
		duration, _ := ledger.FindDuration(catalog, sub.DurationId)
		res.Outstanding = res.Outstanding.Add(ledger.ComputeBalance(sub, duration, paidPayments).Remaining)
	}

	invoices, err := uow.InvoiceRepository().FindAll(ctx)
	if err != nil {
		return nil, apperror.Storage(err, "list invoices")
	}
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPaid {
			res.UnpaidInvoices++
		}
		if isOverdue(inv, today) {
			res.OverdueInvoices++
		}
	}

	recent, err := uow.PaymentRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: true},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentPaymentsLimit},
	)
	if err != nil {
		return nil, apperror.Storage(err, "list recent payments")
	}
	res.RecentPayments = toPaymentResponses(recent, s.currency)

	res.RevenueDisplay = ledger.FormatAmount(res.Revenue, s.currency)
	res.OutstandingDisplay = ledger.FormatAmount(res.Outstanding, s.currency)
	return res, nil
}
