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
)

type IInterventionService interface {
	GetAll(ctx context.Context, req *dto.ListInterventionsRequest) ([]*dto.InterventionResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InterventionResponse, error)
	Create(ctx context.Context, req *dto.CreateInterventionRequest) (*dto.InterventionResponse, error)
	Update(ctx context.Context, req *dto.UpdateInterventionRequest) (*dto.InterventionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type interventionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	clock      Clock
	currency   string
}

func NewInterventionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, clock Clock, currency string) IInterventionService {
	return &interventionService{
		uowFactory: uowFactory,
		logger:     logger,
		clock:      clockOrSystem(clock),
		currency:   currency,
	}
}

func (s *interventionService) GetAll(ctx context.Context, req *dto.ListInterventionsRequest) ([]*dto.InterventionResponse, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "date", Desc: true}}
	if req != nil {
		carId, err := parseOptionalUUID("car_id", req.CarId)
		if err != nil {
			return nil, err
		}
		if carId != nil {
			specs = append(specs, specification.ByCarID{CarID: *carId})
		}
		installerId, err := parseOptionalUUID("installer_id", req.InstallerId)
		if err != nil {
			return nil, err
		}
		if installerId != nil {
			specs = append(specs, specification.ByInstallerID{InstallerID: *installerId})
		}
		if req.Status != "" {
			specs = append(specs, specification.ByStatus{Status: req.Status})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	interventions, err := uow.InterventionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list interventions")
	}
	types, err := uow.InterventionTypeRepository().FindAll(ctx)
	if err != nil {
		return nil, apperror.Storage(err, "list intervention types")
	}
	byId := make(map[uuid.UUID]*entity.InterventionType, len(types))
	for _, t := range types {
		byId[t.Id] = t
	}

	result := make([]*dto.InterventionResponse, 0, len(interventions))
	for _, i := range interventions {
		t, ok := byId[i.TypeId]
		if !ok {
			return nil, apperror.NotFound("intervention type", i.TypeId)
		}
		result = append(result, toInterventionResponse(i, t, s.currency))
	}
	return result, nil
}

func findIntervention(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Intervention, error) {
	intervention, err := uow.InterventionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find intervention")
	}
	if intervention == nil {
		return nil, apperror.NotFound("intervention", id)
	}
	return intervention, nil
}

func (s *interventionService) Show(ctx context.Context, id uuid.UUID) (*dto.InterventionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	intervention, err := findIntervention(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	t, err := findInterventionType(ctx, uow, intervention.TypeId)
	if err != nil {
		return nil, err
	}
	return toInterventionResponse(intervention, t, s.currency), nil
}

// checkReferences returns the intervention type once car, type and installer are
// known to exist. A new booking on an inactive type is refused.
func (s *interventionService) checkReferences(ctx context.Context, uow unitofwork.UnitOfWork, i *entity.Intervention, previousType uuid.UUID) (*entity.InterventionType, error) {
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: i.CarId})
	if err != nil {
		return nil, apperror.Storage(err, "find car")
	}
	if car == nil {
		return nil, apperror.Validation("car %s does not exist", i.CarId)
	}

	installer, err := uow.InstallerRepository().FindOne(ctx, specification.ByID{ID: i.InstallerId})
	if err != nil {
		return nil, apperror.Storage(err, "find installer")
	}
	if installer == nil {
		return nil, apperror.Validation("installer %s does not exist", i.InstallerId)
	}

	t, err := uow.InterventionTypeRepository().FindOne(ctx, specification.ByID{ID: i.TypeId})
	if err != nil {
		return nil, apperror.Storage(err, "find intervention type")
	}
	if t == nil {
		return nil, apperror.Validation("intervention type %s does not exist", i.TypeId)
	}
	if t.Status != entity.InterventionTypeActive && t.Id != previousType {
		return nil, apperror.Validation("intervention type %s is not active", t.Name)
	}
	return t, nil
}

func interventionStatusOrDefault(status string) entity.InterventionStatus {
	if status == "" {
		return entity.InterventionStatusPending
	}
	return entity.InterventionStatus(status)
}

func (s *interventionService) Create(ctx context.Context, req *dto.CreateInterventionRequest) (*dto.InterventionResponse, error) {
	date, err := parseDateOr("date", req.Date, ledger.Date(s.clock()))
	if err != nil {
		return nil, err
	}
	intervention := entity.Intervention{
		Id:          uuid.New(),
		CarId:       req.CarId,
		TypeId:      req.TypeId,
		InstallerId: req.InstallerId,
		Date:        date,
		Status:      interventionStatusOrDefault(req.Status),
		Notes:       req.Notes,
	}
	if !intervention.Status.Valid() {
		return nil, apperror.Validation("unknown intervention status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := s.checkReferences(ctx, uow, &intervention, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := uow.InterventionRepository().Create(ctx, &intervention); err != nil {
		return nil, apperror.Storage(err, "create intervention")
	}

	s.logger.Info("INTERVENTION", "Intervention scheduled", map[string]interface{}{
		"intervention_id": intervention.Id,
		"car_id":          intervention.CarId,
		"type":            t.Name,
		"price":           t.Price.StringFixed(2),
	})
	return toInterventionResponse(&intervention, t, s.currency), nil
}

func (s *interventionService) Update(ctx context.Context, req *dto.UpdateInterventionRequest) (*dto.InterventionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	intervention, err := findIntervention(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	date, err := parseDateOr("date", req.Date, intervention.Date)
	if err != nil {
		return nil, err
	}

	previousType := intervention.TypeId
	intervention.CarId = req.CarId
	intervention.TypeId = req.TypeId
	intervention.InstallerId = req.InstallerId
	intervention.Date = date
	intervention.Notes = req.Notes
	if req.Status != "" {
		intervention.Status = entity.InterventionStatus(req.Status)
	}
	if !intervention.Status.Valid() {
		return nil, apperror.Validation("unknown intervention status %q", req.Status)
	}

	t, err := s.checkReferences(ctx, uow, intervention, previousType)
	if err != nil {
		return nil, err
	}
	if err := uow.InterventionRepository().Update(ctx, intervention); err != nil {
		return nil, apperror.Storage(err, "update intervention")
	}
	return toInterventionResponse(intervention, t, s.currency), nil
}

func (s *interventionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findIntervention(ctx, uow, id); err != nil {
		return err
	}
	if err := uow.InterventionRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete intervention")
	}
	return nil
}
