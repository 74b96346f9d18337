package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPaymentMethodService interface {
	GetAll(ctx context.Context) ([]*dto.PaymentMethodResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error)
	Create(ctx context.Context, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	Update(ctx context.Context, req *dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentMethodService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPaymentMethodService(uowFactory unitofwork.RepositoryFactory) IPaymentMethodService {
	return &paymentMethodService{uowFactory: uowFactory}
}

func (s *paymentMethodService) GetAll(ctx context.Context) ([]*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	methods, err := uow.PaymentMethodRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, apperror.Storage(err, "list payment methods")
	}

	result := make([]*dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		result = append(result, toPaymentMethodResponse(m))
	}
	return result, nil
}

func (s *paymentMethodService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.PaymentMethod, error) {
	method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find payment method")
	}
	if method == nil {
		return nil, apperror.NotFound("payment method", id)
	}
	return method, nil
}

func (s *paymentMethodService) Show(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error) {
	method, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

func (s *paymentMethodService) ensureUniqueName(ctx context.Context, uow unitofwork.UnitOfWork, name string, self uuid.UUID) error {
	other, err := uow.PaymentMethodRepository().FindOne(ctx, specification.Filter("name", name))
	if err != nil {
		return apperror.Storage(err, "find payment method by name")
	}
	if other != nil && other.Id != self {
		return apperror.Conflict("payment method %q already exists", name)
	}
	return nil
}

func (s *paymentMethodService) Create(ctx context.Context, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureUniqueName(ctx, uow, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	method := entity.PaymentMethod{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := uow.PaymentMethodRepository().Create(ctx, &method); err != nil {
		return nil, apperror.Storage(err, "create payment method")
	}
	return toPaymentMethodResponse(&method), nil
}

func (s *paymentMethodService) Update(ctx context.Context, req *dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	method, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, uow, req.Name, method.Id); err != nil {
		return nil, err
	}

	method.Name = req.Name
	method.Description = req.Description
	if err := uow.PaymentMethodRepository().Update(ctx, method); err != nil {
		return nil, apperror.Storage(err, "update payment method")
	}
	return toPaymentMethodResponse(method), nil
}

func (s *paymentMethodService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	method, err := s.find(ctx, uow, id)
	if err != nil {
		return err
	}

	used, err := uow.PaymentRepository().Count(ctx, specification.ByMethodID{MethodID: id})
	if err != nil {
		return apperror.Storage(err, "count payments")
	}
	if used > 0 {
		return apperror.Conflict("payment method %q is used by %d payment(s)", method.Name, used)
	}

	if err := uow.PaymentMethodRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete payment method")
	}
	return nil
}
