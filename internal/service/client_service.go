package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/ledger"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IClientService interface {
	GetAll(ctx context.Context, search string) ([]*dto.ClientResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	Update(ctx context.Context, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Balance(ctx context.Context, id uuid.UUID) (*dto.ClientBalanceResponse, error)
	Payments(ctx context.Context, id uuid.UUID) ([]*dto.PaymentResponse, error)
}

type clientService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    DurationCatalog
	logger     logger.ILogger
	currency   string
}

func NewClientService(
	uowFactory unitofwork.RepositoryFactory,
	catalog DurationCatalog,
	logger logger.ILogger,
	currency string,
) IClientService {
	return &clientService{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     logger,
		currency:   currency,
	}
}

func (s *clientService) GetAll(ctx context.Context, search string) ([]*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "name"}}
	if search != "" {
		specs = append(specs, specification.NameSearch{Field: "name", Query: search})
	}

	clients, err := uow.ClientRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list clients")
	}

	return lo.Map(clients, func(c *entity.Client, _ int) *dto.ClientResponse {
		return toClientResponse(c)
	}), nil
}

func (s *clientService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Client, error) {
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find client")
	}
	if client == nil {
		return nil, apperror.NotFound("client", id)
	}
	return client, nil
}

func (s *clientService) Show(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	client, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func clientStatusOrDefault(status string) entity.ClientStatus {
	if status == "" {
		return entity.ClientStatusActive
	}
	return entity.ClientStatus(status)
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	status := clientStatusOrDefault(req.Status)
	if !status.Valid() {
		return nil, apperror.Validation("unknown client status %q", req.Status)
	}

	client := entity.Client{
		Id:     uuid.New(),
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: status,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ClientRepository().Create(ctx, &client); err != nil {
		return nil, apperror.Storage(err, "create client")
	}

	s.logger.Info("CLIENT", "Client created", map[string]interface{}{"client_id": client.Id})
	return toClientResponse(&client), nil
}

func (s *clientService) Update(ctx context.Context, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	status := clientStatusOrDefault(req.Status)
	if !status.Valid() {
		return nil, apperror.Validation("unknown client status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Status = status

	if err := uow.ClientRepository().Update(ctx, client); err != nil {
		return nil, apperror.Storage(err, "update client")
	}
	return toClientResponse(client), nil
}

// Delete refuses to remove a client that still owns subscriptions, cars or installations.
func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	client, err := s.find(ctx, uow, id)
	if err != nil {
		return err
	}

	subs, err := uow.SubscriptionRepository().Count(ctx, specification.ByClientID{ClientID: id})
	if err != nil {
		return apperror.Storage(err, "count subscriptions")
	}
	cars, err := uow.CarRepository().Count(ctx, specification.ByClientID{ClientID: id})
	if err != nil {
		return apperror.Storage(err, "count cars")
	}
	installations, err := uow.InstallationRepository().Count(ctx, specification.ByClientID{ClientID: id})
	if err != nil {
		return apperror.Storage(err, "count installations")
	}
	if subs > 0 || cars > 0 || installations > 0 {
		return apperror.Conflict("client %s still has %d subscription(s), %d car(s) and %d installation(s)",
			client.Name, subs, cars, installations)
	}

	if err := uow.ClientRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete client")
	}
	if err := uow.Commit(); err != nil {
		return apperror.Storage(err, "commit client delete")
	}

	s.logger.Info("CLIENT", "Client deleted", map[string]interface{}{"client_id": id})
	return nil
}

func (s *clientService) Balance(ctx context.Context, id uuid.UUID) (*dto.ClientBalanceResponse, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := s.find(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specification.ByClientID{ClientID: id})
	if err != nil {
		return nil, apperror.Storage(err, "list subscriptions")
	}

	var payments []*entity.Payment
	if len(subs) > 0 {
		ids := lo.Map(subs, func(sub *entity.Subscription, _ int) uuid.UUID { return sub.Id })
		payments, err = uow.PaymentRepository().FindAll(ctx, specification.BySubscriptionIDs{SubscriptionIDs: ids})
		if err != nil {
			return nil, apperror.Storage(err, "list payments")
		}
	}

	b := ledger.ComputeClientBalance(client, subs, catalog, payments)
	return &dto.ClientBalanceResponse{
		ClientId:         client.Id,
		TotalDue:         b.TotalDue,
		TotalDueDisplay:  ledger.FormatAmount(b.TotalDue, s.currency),
		TotalPaid:        b.TotalPaid,
		TotalPaidDisplay: ledger.FormatAmount(b.TotalPaid, s.currency),
		Overdue:          b.Overdue,
		OverdueDisplay:   ledger.FormatAmount(b.Overdue, s.currency),
	}, nil
}

// Payments is the client's payment history, newest first.
func (s *clientService) Payments(ctx context.Context, id uuid.UUID) ([]*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.find(ctx, uow, id); err != nil {
		return nil, err
	}

	payments, err := uow.PaymentRepository().FindAll(ctx,
		specification.ByClientID{ClientID: id},
		specification.OrderBy{Field: "date", Desc: true},
		specification.OrderBy{Field: "reference", Desc: true},
	)
	if err != nil {
		return nil, apperror.Storage(err, "list payments")
	}
	return toPaymentResponses(payments, s.currency), nil
}
