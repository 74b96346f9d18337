package service

import (
	"context"
	"time"

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

type ISubscriptionService interface {
	GetAll(ctx context.Context, req *dto.ListSubscriptionsRequest) ([]*dto.SubscriptionResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error)
	Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Update(ctx context.Context, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Renew(ctx context.Context, req *dto.RenewSubscriptionRequest) (*dto.SubscriptionPaymentResponse, error)
	AddPayment(ctx context.Context, req *dto.AddSubscriptionPaymentRequest) (*dto.SubscriptionPaymentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExpireDue(ctx context.Context, req *dto.ExpireSubscriptionsRequest) (*dto.ExpireSubscriptionsResponse, error)
	Balance(ctx context.Context, id uuid.UUID) (*dto.BalanceResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    DurationCatalog
	publisher  IPublisherService
	logger     logger.ILogger
	clock      Clock
	currency   string
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	catalog DurationCatalog,
	publisher IPublisherService,
	logger logger.ILogger,
	clock Clock,
	currency string,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		logger:     logger,
		clock:      clockOrSystem(clock),
		currency:   currency,
	}
}

func (s *subscriptionService) today() time.Time {
	return ledger.Date(s.clock())
}

func subscriptionEventData(sub *entity.Subscription) map[string]interface{} {
	data := map[string]interface{}{
		"subscription_id":  sub.Id.String(),
		"client_id":        sub.ClientId.String(),
		"duration_id":      sub.DurationId.String(),
		"start_date":       sub.StartDate.Format(ledger.DateLayout),
		"end_date":         sub.EndDate.Format(ledger.DateLayout),
		"status":           string(sub.Status),
		"payment_status":   string(sub.PaymentStatus),
		"remaining_amount": sub.RemainingAmount.String(),
	}
	if sub.CarId != nil {
		data["car_id"] = sub.CarId.String()
	}
	return data
}

func findSubscription(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Subscription, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find subscription")
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription", id)
	}
	return sub, nil
}

func (s *subscriptionService) GetAll(ctx context.Context, req *dto.ListSubscriptionsRequest) ([]*dto.SubscriptionResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "end_date"},
		specification.OrderBy{Field: "id"},
	}
	clientId, err := parseOptionalUUID("client_id", req.ClientId)
	if err != nil {
		return nil, err
	}
	if clientId != nil {
		specs = append(specs, specification.ByClientID{ClientID: *clientId})
	}
	if req.Status != "" {
		if !entity.SubscriptionStatus(req.Status).Valid() {
			return nil, apperror.Validation("unknown subscription status %q", req.Status)
		}
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.SubscriptionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list subscriptions")
	}

	return lo.Map(subs, func(sub *entity.Subscription, _ int) *dto.SubscriptionResponse {
		return toSubscriptionResponse(sub, catalog, s.currency)
	}), nil
}

func (s *subscriptionService) Show(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := findSubscription(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toSubscriptionResponse(sub, catalog, s.currency), nil
}

// ensureCar checks that carId, when set, names a car of the client.
func ensureCar(ctx context.Context, uow unitofwork.UnitOfWork, carId *uuid.UUID, clientId uuid.UUID) error {
	if carId == nil {
		return nil
	}
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: *carId})
	if err != nil {
		return apperror.Storage(err, "find car")
	}
	if car == nil {
		return apperror.Validation("car %s does not exist", *carId)
	}
	if car.ClientId != clientId {
		return apperror.Validation("car %s belongs to another client", car.Id)
	}
	return nil
}

// Create opens an unpaid subscription for the whole duration price.
func (s *subscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	start, err := parseDateOr("start_date", req.StartDate, s.today())
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	duration, ok := ledger.FindDuration(catalog, req.DurationId)
	if !ok {
		return nil, apperror.Validation("subscription duration %s does not exist", req.DurationId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: req.ClientId})
	if err != nil {
		return nil, apperror.Storage(err, "find client")
	}
	if client == nil {
		return nil, apperror.Validation("client %s does not exist", req.ClientId)
	}
	if err := ensureCar(ctx, uow, req.CarId, client.Id); err != nil {
		return nil, err
	}

	sub := entity.Subscription{
		Id:              uuid.New(),
		ClientId:        client.Id,
		DurationId:      duration.Id,
		CarId:           req.CarId,
		StartDate:       start,
		EndDate:         ledger.PeriodEnd(start, duration.Months),
		Status:          entity.SubscriptionStatusActive,
		PaymentStatus:   entity.SubscriptionPaymentUnpaid,
		RemainingAmount: duration.Price,
	}

	if err := uow.SubscriptionRepository().Create(ctx, &sub); err != nil {
		return nil, apperror.Storage(err, "create subscription")
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit subscription")
	}

	s.logger.Info("SUBSCRIPTION", "Subscription created", subscriptionEventData(&sub))
	emit(ctx, s.publisher, s.logger, events.SubscriptionCreated, subscriptionEventData(&sub))
	return toSubscriptionResponse(&sub, catalog, s.currency), nil
}

// Update moves the period or changes duration/car; end date and balance follow.
func (s *subscriptionService) Update(ctx context.Context, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	if req.DurationId != nil {
		if _, ok := ledger.FindDuration(catalog, *req.DurationId); !ok {
			return nil, apperror.Validation("subscription duration %s does not exist", *req.DurationId)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	sub, err := findSubscription(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		start, err := parseDateOr("start_date", *req.StartDate, sub.StartDate)
		if err != nil {
			return nil, err
		}
		sub.StartDate = start
	}
	if req.DurationId != nil {
		sub.DurationId = *req.DurationId
	}
	if req.CarId != nil {
		if err := ensureCar(ctx, uow, req.CarId, sub.ClientId); err != nil {
			return nil, err
		}
		sub.CarId = req.CarId
	}
	duration := ledger.DurationOrZero(catalog, sub.DurationId)
	sub.EndDate = ledger.PeriodEnd(sub.StartDate, duration.Months)

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, apperror.Storage(err, "update subscription")
	}
	sub, _, err = refreshSubscriptionBalance(ctx, uow, catalog, sub.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit subscription update")
	}

	emit(ctx, s.publisher, s.logger, events.SubscriptionUpdated, subscriptionEventData(sub))
	return toSubscriptionResponse(sub, catalog, s.currency), nil
}

// Renew restarts the subscription today for a full duration and records the
// renewal payment as paid. The amount is not compared to the duration price.
func (s *subscriptionService) Renew(ctx context.Context, req *dto.RenewSubscriptionRequest) (*dto.SubscriptionPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	today := s.today()
	paidOn, err := parseDateOr("payment_date", req.PaymentDate, today)
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

	sub, err := findSubscription(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := ensureMethod(ctx, uow, req.MethodId); err != nil {
		return nil, err
	}

	duration := ledger.DurationOrZero(catalog, sub.DurationId)
	sub.StartDate = today
	sub.EndDate = ledger.PeriodEnd(today, duration.Months)
	sub.Status = entity.SubscriptionStatusActive
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, apperror.Storage(err, "renew subscription")
	}

	subId := sub.Id
	payment := entity.Payment{
		Id:             uuid.New(),
		Date:           paidOn,
		Amount:         req.Amount,
		MethodId:       req.MethodId,
		ClientId:       sub.ClientId,
		SubscriptionId: &subId,
		Status:         entity.PaymentStatusPaid,
		Reference:      ledger.NewReference(ledger.ReferenceRenewal),
		Receipt:        req.Receipt,
	}
	sub, err = appendPayment(ctx, uow, catalog, &payment)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit renewal")
	}

	s.logger.Info("SUBSCRIPTION", "Subscription renewed", map[string]interface{}{
		"subscription_id": sub.Id,
		"end_date":        sub.EndDate.Format(ledger.DateLayout),
		"reference":       payment.Reference,
	})
	emit(ctx, s.publisher, s.logger, events.SubscriptionRenewed, subscriptionEventData(sub))
	emit(ctx, s.publisher, s.logger, events.PaymentRecorded, paymentEventData(&payment))

	return &dto.SubscriptionPaymentResponse{
		Subscription: toSubscriptionResponse(sub, catalog, s.currency),
		Payment:      toPaymentResponse(&payment, s.currency),
	}, nil
}

// AddPayment records a paid instalment. The remaining balance is read from the
// ledger inside the same transaction and an amount above it is refused.
func (s *subscriptionService) AddPayment(ctx context.Context, req *dto.AddSubscriptionPaymentRequest) (*dto.SubscriptionPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	paidOn, err := parseDateOr("date", req.Date, s.today())
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

	sub, err := findSubscription(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := ensureMethod(ctx, uow, req.MethodId); err != nil {
		return nil, err
	}

	existing, err := uow.PaymentRepository().FindAll(ctx, specification.BySubscriptionID{SubscriptionID: sub.Id})
	if err != nil {
		return nil, apperror.Storage(err, "list subscription payments")
	}
	duration, _ := ledger.FindDuration(catalog, sub.DurationId)
	balance := ledger.ComputeBalance(sub, duration, existing)
	if req.Amount.GreaterThan(balance.Remaining) {
		return nil, apperror.Validation("amount %s exceeds the remaining balance %s",
			ledger.FormatAmount(req.Amount, s.currency), ledger.FormatAmount(balance.Remaining, s.currency))
	}

	subId := sub.Id
	payment := entity.Payment{
		Id:             uuid.New(),
		Date:           paidOn,
		Amount:         req.Amount,
		MethodId:       req.MethodId,
		ClientId:       sub.ClientId,
		SubscriptionId: &subId,
		Status:         entity.PaymentStatusPaid,
		Reference:      ledger.NewReference(ledger.ReferencePayment),
		Receipt:        req.Receipt,
	}
	sub, err = appendPayment(ctx, uow, catalog, &payment)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit payment")
	}

	emit(ctx, s.publisher, s.logger, events.PaymentRecorded, paymentEventData(&payment))
	return &dto.SubscriptionPaymentResponse{
		Subscription: toSubscriptionResponse(sub, catalog, s.currency),
		Payment:      toPaymentResponse(&payment, s.currency),
	}, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := findSubscription(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != entity.SubscriptionStatusActive {
		return nil, apperror.Conflict("only active subscriptions can be cancelled, this one is %s", sub.Status)
	}

	sub.Status = entity.SubscriptionStatusCancelled
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, apperror.Storage(err, "cancel subscription")
	}

	s.logger.Info("SUBSCRIPTION", "Subscription cancelled", map[string]interface{}{"subscription_id": sub.Id})
	emit(ctx, s.publisher, s.logger, events.SubscriptionCancelled, subscriptionEventData(sub))
	return toSubscriptionResponse(sub, catalog, s.currency), nil
}

// Delete removes the subscription only. Its payments stay in the ledger with a
// dangling subscription id.
func (s *subscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := findSubscription(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.SubscriptionRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete subscription")
	}

	s.logger.Info("SUBSCRIPTION", "Subscription deleted", map[string]interface{}{"subscription_id": id})
	emit(ctx, s.publisher, s.logger, events.SubscriptionDeleted, subscriptionEventData(sub))
	return nil
}

// ExpireDue marks every active subscription whose end date is before the cut-off as expired.
func (s *subscriptionService) ExpireDue(ctx context.Context, req *dto.ExpireSubscriptionsRequest) (*dto.ExpireSubscriptionsResponse, error) {
	asOf, err := parseDateOr("as_of", req.AsOf, s.today())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	due, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.EndingBefore{At: asOf},
	)
	if err != nil {
		return nil, apperror.Storage(err, "list due subscriptions")
	}

	expired := make([]uuid.UUID, 0, len(due))
	for _, sub := range due {
		sub.Status = entity.SubscriptionStatusExpired
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return nil, apperror.Storage(err, "expire subscription")
		}
		expired = append(expired, sub.Id)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit expiry")
	}

	for _, sub := range due {
		emit(ctx, s.publisher, s.logger, events.SubscriptionExpired, subscriptionEventData(sub))
	}
	s.logger.Info("SUBSCRIPTION", "Expiry sweep finished", map[string]interface{}{
		"as_of":   asOf.Format(ledger.DateLayout),
		"expired": len(expired),
	})

	return &dto.ExpireSubscriptionsResponse{
		AsOf:    asOf.Format(ledger.DateLayout),
		Expired: expired,
	}, nil
}

// Balance is computed from the ledger, not from the stored remaining amount.
func (s *subscriptionService) Balance(ctx context.Context, id uuid.UUID) (*dto.BalanceResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := findSubscription(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	payments, err := uow.PaymentRepository().FindAll(ctx, specification.BySubscriptionID{SubscriptionID: sub.Id})
	if err != nil {
		return nil, apperror.Storage(err, "list subscription payments")
	}

	duration, _ := ledger.FindDuration(catalog, sub.DurationId)
	return toBalanceResponse(sub, ledger.ComputeBalance(sub, duration, payments), s.currency), nil
}
