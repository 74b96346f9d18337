package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IInterventionTypeService interface {
	GetAll(ctx context.Context) ([]*dto.InterventionTypeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InterventionTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateInterventionTypeRequest) (*dto.InterventionTypeResponse, error)
	Update(ctx context.Context, req *dto.UpdateInterventionTypeRequest) (*dto.InterventionTypeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type interventionTypeService struct {
	uowFactory unitofwork.RepositoryFactory
	currency   string
}

func NewInterventionTypeService(uowFactory unitofwork.RepositoryFactory, currency string) IInterventionTypeService {
	return &interventionTypeService{
		uowFactory: uowFactory,
		currency:   currency,
	}
}

func (s *interventionTypeService) GetAll(ctx context.Context) ([]*dto.InterventionTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.InterventionTypeRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, apperror.Storage(err, "list intervention types")
	}

	result := make([]*dto.InterventionTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, toInterventionTypeResponse(t, s.currency))
	}
	return result, nil
}

func findInterventionType(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.InterventionType, error) {
	t, err := uow.InterventionTypeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find intervention type")
	}
	if t == nil {
		return nil, apperror.NotFound("intervention type", id)
	}
	return t, nil
}

func (s *interventionTypeService) Show(ctx context.Context, id uuid.UUID) (*dto.InterventionTypeResponse, error) {
	t, err := findInterventionType(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toInterventionTypeResponse(t, s.currency), nil
}

func validateInterventionType(minutes int, price decimal.Decimal, status entity.InterventionTypeStatus) error {
	if minutes <= 0 {
		return apperror.Validation("duration_minutes must be greater than zero")
	}
	if price.IsNegative() {
		return apperror.Validation("price must not be negative")
	}
	if !status.Valid() {
		return apperror.Validation("unknown intervention type status %q", status)
	}
	return nil
}

func interventionTypeStatusOrDefault(status string) entity.InterventionTypeStatus {
	if status == "" {
		return entity.InterventionTypeActive
	}
	return entity.InterventionTypeStatus(status)
}

func (s *interventionTypeService) Create(ctx context.Context, req *dto.CreateInterventionTypeRequest) (*dto.InterventionTypeResponse, error) {
	status := interventionTypeStatusOrDefault(req.Status)
	if err := validateInterventionType(req.DurationMinutes, req.Price, status); err != nil {
		return nil, err
	}

	t := entity.InterventionType{
		Id:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Status:          status,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InterventionTypeRepository().Create(ctx, &t); err != nil {
		return nil, apperror.Storage(err, "create intervention type")
	}
	return toInterventionTypeResponse(&t, s.currency), nil
}

func (s *interventionTypeService) Update(ctx context.Context, req *dto.UpdateInterventionTypeRequest) (*dto.InterventionTypeResponse, error) {
	status := interventionTypeStatusOrDefault(req.Status)
	if err := validateInterventionType(req.DurationMinutes, req.Price, status); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := findInterventionType(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	t.Name = req.Name
	t.Description = req.Description
	t.DurationMinutes = req.DurationMinutes
	t.Price = req.Price
	t.Status = status

	if err := uow.InterventionTypeRepository().Update(ctx, t); err != nil {
		return nil, apperror.Storage(err, "update intervention type")
	}
	return toInterventionTypeResponse(t, s.currency), nil
}

func (s *interventionTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findInterventionType(ctx, uow, id); err != nil {
		return err
	}

	n, err := uow.InterventionRepository().Count(ctx, specification.ByTypeID{TypeID: id})
	if err != nil {
		return apperror.Storage(err, "count interventions")
	}
	if n > 0 {
		return apperror.Conflict("intervention type %s is used by %d intervention(s)", id, n)
	}

	if err := uow.InterventionTypeRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete intervention type")
	}
	return nil
}
