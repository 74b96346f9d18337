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
)

type IPaymentService interface {
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	List(ctx context.Context, req *dto.ListPaymentsRequest) ([]*dto.PaymentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	Update(ctx context.Context, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    DurationCatalog
	publisher  IPublisherService
	logger     logger.ILogger
	clock      Clock
	currency   string
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	catalog DurationCatalog,
	publisher IPublisherService,
	logger logger.ILogger,
	clock Clock,
	currency string,
) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		logger:     logger,
		clock:      clockOrSystem(clock),
		currency:   currency,
	}
}

func paymentEventData(p *entity.Payment) map[string]interface{} {
	data := map[string]interface{}{
		"payment_id": p.Id.String(),
		"client_id":  p.ClientId.String(),
		"reference":  p.Reference,
		"amount":     p.Amount.String(),
		"status":     string(p.Status),
		"date":       p.Date.Format(ledger.DateLayout),
	}
	if p.SubscriptionId != nil {
		data["subscription_id"] = p.SubscriptionId.String()
	}
	return data
}

func ensureMethod(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Storage(err, "find payment method")
	}
	if method == nil {
		return apperror.Validation("payment method %s does not exist", id)
	}
	return nil
}

// appendPayment writes a new ledger entry and refreshes the linked subscription.
func appendPayment(ctx context.Context, uow unitofwork.UnitOfWork, catalog []*entity.SubscriptionDuration, p *entity.Payment) (*entity.Subscription, error) {
	if err := uow.PaymentRepository().Create(ctx, p); err != nil {
		return nil, apperror.Storage(err, "create payment")
	}
	if p.SubscriptionId == nil {
		return nil, nil
	}
	sub, _, err := refreshSubscriptionBalance(ctx, uow, catalog, *p.SubscriptionId)
	return sub, err
}

func (s *paymentService) checkReferences(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.CreatePaymentRequest) error {
	if err := ensureMethod(ctx, uow, req.MethodId); err != nil {
		return err
	}

	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: req.ClientId})
	if err != nil {
		return apperror.Storage(err, "find client")
	}
	if client == nil {
		return apperror.Validation("client %s does not exist", req.ClientId)
	}

	if req.SubscriptionId == nil {
		return nil
	}
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: *req.SubscriptionId})
	if err != nil {
		return apperror.Storage(err, "find subscription")
	}
	if sub == nil {
		return apperror.Validation("subscription %s does not exist", *req.SubscriptionId)
	}
	if sub.ClientId != req.ClientId {
		return apperror.Validation("subscription %s belongs to another client", sub.Id)
	}
	return nil
}

// Create records a payment with a fresh PAY- reference.
func (s *paymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	status := entity.PaymentStatusPaid
	if req.Status != "" {
		status = entity.PaymentStatus(req.Status)
	}
	if !status.Valid() {
		return nil, apperror.Validation("unknown payment status %q", req.Status)
	}
	date, err := parseDateOr("date", req.Date, ledger.Date(s.clock()))
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	if err := s.checkReferences(ctx, uow, req); err != nil {
		return nil, err
	}

	payment := entity.Payment{
		Id:             uuid.New(),
		Date:           date,
		Amount:         req.Amount,
		MethodId:       req.MethodId,
		ClientId:       req.ClientId,
		SubscriptionId: req.SubscriptionId,
		Status:         status,
		Reference:      ledger.NewReference(ledger.ReferencePayment),
		Receipt:        req.Receipt,
	}
	if _, err := appendPayment(ctx, uow, catalog, &payment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit payment")
	}

	s.logger.Info("PAYMENT", "Payment recorded", paymentEventData(&payment))
	emit(ctx, s.publisher, s.logger, events.PaymentRecorded, paymentEventData(&payment))
	return toPaymentResponse(&payment, s.currency), nil
}

func paymentFilterSpecs(f entity.PaymentFilter) []specification.Specification {
	specs := []specification.Specification{}
	if f.SubscriptionId != nil {
		specs = append(specs, specification.BySubscriptionID{SubscriptionID: *f.SubscriptionId})
	}
	if f.ClientId != nil {
		specs = append(specs, specification.ByClientID{ClientID: *f.ClientId})
	}
	if f.Status != nil {
		specs = append(specs, specification.ByStatus{Status: string(*f.Status)})
	}
	if f.From != nil || f.To != nil {
		specs = append(specs, specification.DateBetween{Field: "date", From: f.From, To: f.To})
	}
	return specs
}

func (s *paymentService) parseFilter(req *dto.ListPaymentsRequest) (entity.PaymentFilter, error) {
	var f entity.PaymentFilter
	var err error

	if f.SubscriptionId, err = parseOptionalUUID("subscription_id", req.SubscriptionId); err != nil {
		return f, err
	}
	if f.ClientId, err = parseOptionalUUID("client_id", req.ClientId); err != nil {
		return f, err
	}
	if req.Status != "" {
		status := entity.PaymentStatus(req.Status)
		if !status.Valid() {
			return f, apperror.Validation("unknown payment status %q", req.Status)
		}
		f.Status = &status
	}
	if req.From != "" {
		from, err := parseDateOr("from", req.From, ledger.Date(s.clock()))
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if req.To != "" {
		to, err := parseDateOr("to", req.To, ledger.Date(s.clock()))
		if err != nil {
			return f, err
		}
		f.To = &to
	}
	return f, nil
}

// List returns a snapshot of the payments matching every given filter, oldest first.
func (s *paymentService) List(ctx context.Context, req *dto.ListPaymentsRequest) ([]*dto.PaymentResponse, error) {
	filter, err := s.parseFilter(req)
	if err != nil {
		return nil, err
	}

	specs := append(paymentFilterSpecs(filter),
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "reference"},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	payments, err := uow.PaymentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list payments")
	}
	return toPaymentResponses(payments, s.currency), nil
}

func findPayment(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Payment, error) {
	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find payment")
	}
	if payment == nil {
		return nil, apperror.NotFound("payment", id)
	}
	return payment, nil
}

func (s *paymentService) Show(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := findPayment(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment, s.currency), nil
}

func (s *paymentService) Update(ctx context.Context, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	if req.Status != nil && !entity.PaymentStatus(*req.Status).Valid() {
		return nil, apperror.Validation("unknown payment status %q", *req.Status)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	payment, err := findPayment(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDateOr("date", *req.Date, payment.Date)
		if err != nil {
			return nil, err
		}
		payment.Date = date
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.MethodId != nil {
		if err := ensureMethod(ctx, uow, *req.MethodId); err != nil {
			return nil, err
		}
		payment.MethodId = *req.MethodId
	}
	if req.Status != nil {
		payment.Status = entity.PaymentStatus(*req.Status)
	}

	if err := uow.PaymentRepository().Update(ctx, payment); err != nil {
		return nil, apperror.Storage(err, "update payment")
	}
	if payment.SubscriptionId != nil {
		if _, _, err := refreshSubscriptionBalance(ctx, uow, catalog, *payment.SubscriptionId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit payment update")
	}

	emit(ctx, s.publisher, s.logger, events.PaymentUpdated, paymentEventData(payment))
	return toPaymentResponse(payment, s.currency), nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	payment, err := findPayment(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.PaymentRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete payment")
	}
	if payment.SubscriptionId != nil {
		if _, _, err := refreshSubscriptionBalance(ctx, uow, catalog, *payment.SubscriptionId); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return apperror.Storage(err, "commit payment delete")
	}

	s.logger.Info("PAYMENT", "Payment deleted", paymentEventData(payment))
	emit(ctx, s.publisher, s.logger, events.PaymentDeleted, paymentEventData(payment))
	return nil
}
