package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/events"
	"gps-tracking-be/pkg/ledger"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IInvoiceService interface {
	GetAll(ctx context.Context, req *dto.ListInvoicesRequest) ([]*dto.InvoiceResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Update(ctx context.Context, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Receipt(ctx context.Context, subscriptionId uuid.UUID) (*dto.ReceiptResponse, error)
}

type invoiceService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    DurationCatalog
	numberer   InvoiceNumberer
	publisher  IPublisherService
	logger     logger.ILogger
	clock      Clock
	currency   string
	dueDays    int
}

func NewInvoiceService(
	uowFactory unitofwork.RepositoryFactory,
	catalog DurationCatalog,
	numberer InvoiceNumberer,
	publisher IPublisherService,
	logger logger.ILogger,
	clock Clock,
	currency string,
	dueDays int,
) IInvoiceService {
	if dueDays <= 0 {
		dueDays = ledger.DefaultDueDays
	}
	return &invoiceService{
		uowFactory: uowFactory,
		catalog:    catalog,
		numberer:   numberer,
		publisher:  publisher,
		logger:     logger,
		clock:      clockOrSystem(clock),
		currency:   currency,
		dueDays:    dueDays,
	}
}

func invoiceEventData(inv *entity.Invoice) map[string]interface{} {
	data := map[string]interface{}{
		"invoice_id":   inv.Id.String(),
		"number":       inv.Number,
		"client_id":    inv.ClientId.String(),
		"total_amount": inv.TotalAmount.String(),
		"status":       string(inv.Status),
		"due_date":     inv.DueDate.Format(ledger.DateLayout),
	}
	if inv.SubscriptionId != nil {
		data["subscription_id"] = inv.SubscriptionId.String()
	}
	return data
}

func toInvoiceItems(items []dto.InvoiceItemRequest) ([]entity.InvoiceItem, error) {
	result := make([]entity.InvoiceItem, 0, len(items))
	for i, it := range items {
		if it.Quantity <= 0 {
			return nil, apperror.Validation("item %d: quantity must be greater than zero", i+1)
		}
		if it.UnitPrice.IsNegative() {
			return nil, apperror.Validation("item %d: unit price must not be negative", i+1)
		}
		result = append(result, entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return result, nil
}

func (s *invoiceService) GetAll(ctx context.Context, req *dto.ListInvoicesRequest) ([]*dto.InvoiceResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "date", Desc: true},
		specification.OrderBy{Field: "number", Desc: true},
	}
	clientId, err := parseOptionalUUID("client_id", req.ClientId)
	if err != nil {
		return nil, err
	}
	if clientId != nil {
		specs = append(specs, specification.ByClientID{ClientID: *clientId})
	}
	if req.Status != "" {
		if !entity.InvoiceStatus(req.Status).Valid() {
			return nil, apperror.Validation("unknown invoice status %q", req.Status)
		}
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, err := uow.InvoiceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list invoices")
	}

	return lo.Map(invoices, func(inv *entity.Invoice, _ int) *dto.InvoiceResponse {
		return toInvoiceResponse(inv, s.currency)
	}), nil
}

func findInvoice(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find invoice")
	}
	if inv == nil {
		return nil, apperror.NotFound("invoice", id)
	}
	return inv, nil
}

func (s *invoiceService) Show(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := findInvoice(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, s.currency), nil
}

// Create numbers and stores a new unpaid invoice. Without items, an invoice for a
// subscription gets one line for its duration at the catalog price.
func (s *invoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	items, err := toInvoiceItems(req.Items)
	if err != nil {
		return nil, err
	}
	date, err := parseDateOr("date", req.Date, ledger.Date(s.clock()))
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDateOr("due_date", req.DueDate, date.AddDate(0, 0, s.dueDays))
	if err != nil {
		return nil, err
	}
	if dueDate.Before(date) {
		return nil, apperror.Validation("due date must not be before the invoice date")
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: req.ClientId})
	if err != nil {
		return nil, apperror.Storage(err, "find client")
	}
	if client == nil {
		return nil, apperror.Validation("client %s does not exist", req.ClientId)
	}

	var sub *entity.Subscription
	if req.SubscriptionId != nil {
		sub, err = uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: *req.SubscriptionId})
		if err != nil {
			return nil, apperror.Storage(err, "find subscription")
		}
		if sub == nil {
			return nil, apperror.Validation("subscription %s does not exist", *req.SubscriptionId)
		}
		if sub.ClientId != client.Id {
			return nil, apperror.Validation("subscription %s belongs to another client", sub.Id)
		}
	}

	if len(items) == 0 {
		if sub == nil {
			return nil, apperror.Validation("an invoice needs at least one item")
		}
		items = []entity.InvoiceItem{ledger.SubscriptionLine(ledger.DurationOrZero(catalog, sub.DurationId))}
	}

	inv := ledger.BuildInvoice(client, sub, items, date, dueDate, req.Notes)

	number, err := s.numberer.Next(ctx, inv.Date)
	if err != nil {
		return nil, apperror.Storage(err, "next invoice number")
	}
	inv.Number = number

	if err := uow.InvoiceRepository().Create(ctx, inv); err != nil {
		return nil, apperror.Storage(err, "create invoice")
	}

	s.logger.Info("INVOICE", "Invoice created", invoiceEventData(inv))
	emit(ctx, s.publisher, s.logger, events.InvoiceCreated, invoiceEventData(inv))
	return toInvoiceResponse(inv, s.currency), nil
}

// Update edits items, dates, status or notes. Totals are always recomputed.
func (s *invoiceService) Update(ctx context.Context, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inv, err := findInvoice(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Items != nil {
		items, err := toInvoiceItems(req.Items)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, apperror.Validation("an invoice needs at least one item")
		}
		inv.Items = items
	}
	if req.Date != nil {
		if inv.Date, err = parseDateOr("date", *req.Date, inv.Date); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if inv.DueDate, err = parseDateOr("due_date", *req.DueDate, inv.DueDate); err != nil {
			return nil, err
		}
	}
	if inv.DueDate.Before(inv.Date) {
		return nil, apperror.Validation("due date must not be before the invoice date")
	}
	if req.Status != nil {
		status := entity.InvoiceStatus(*req.Status)
		if !status.Valid() {
			return nil, apperror.Validation("unknown invoice status %q", *req.Status)
		}
		inv.Status = status
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}

	ledger.RecomputeInvoice(inv)
	if err := uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, apperror.Storage(err, "update invoice")
	}

	emit(ctx, s.publisher, s.logger, events.InvoiceUpdated, invoiceEventData(inv))
	return toInvoiceResponse(inv, s.currency), nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inv, err := findInvoice(ctx, uow, id)
	if err != nil {
		return err
	}
	if err := uow.InvoiceRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete invoice")
	}

	emit(ctx, s.publisher, s.logger, events.InvoiceDeleted, invoiceEventData(inv))
	return nil
}

// Receipt lists the subscription's paid payments against the duration price.
func (s *invoiceService) Receipt(ctx context.Context, subscriptionId uuid.UUID) (*dto.ReceiptResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := findSubscription(ctx, uow, subscriptionId)
	if err != nil {
		return nil, err
	}
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: sub.ClientId})
	if err != nil {
		return nil, apperror.Storage(err, "find client")
	}
	payments, err := uow.PaymentRepository().FindAll(ctx,
		specification.BySubscriptionID{SubscriptionID: sub.Id},
		specification.ByStatus{Status: string(entity.PaymentStatusPaid)},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "reference"},
	)
	if err != nil {
		return nil, apperror.Storage(err, "list subscription payments")
	}

	duration, _ := ledger.FindDuration(catalog, sub.DurationId)
	r := ledger.BuildReceipt(sub, client, duration, payments)

	res := &dto.ReceiptResponse{
		Subscription:           toSubscriptionResponse(sub, catalog, s.currency),
		DurationName:           ledger.DurationOrZero(catalog, sub.DurationId).Name,
		Lines:                  make([]dto.ReceiptLineResponse, 0, len(r.Lines)),
		TotalAmount:            r.TotalAmount,
		TotalAmountDisplay:     ledger.FormatAmount(r.TotalAmount, s.currency),
		PaidAmount:             r.PaidAmount,
		PaidAmountDisplay:      ledger.FormatAmount(r.PaidAmount, s.currency),
		RemainingAmount:        r.RemainingAmount,
		RemainingAmountDisplay: ledger.FormatAmount(r.RemainingAmount, s.currency),
	}
	if client != nil {
		res.Client = toClientResponse(client)
	}
	for _, line := range r.Lines {
		res.Lines = append(res.Lines, dto.ReceiptLineResponse{
			Payment:        toPaymentResponse(line.Payment, s.currency),
			Balance:        line.Balance,
			BalanceDisplay: ledger.FormatAmount(line.Balance, s.currency),
		})
	}
	return res, nil
}
