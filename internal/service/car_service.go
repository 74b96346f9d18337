package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICarService interface {
	GetAll(ctx context.Context, clientId *uuid.UUID) ([]*dto.CarResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CarResponse, error)
	Create(ctx context.Context, req *dto.CreateCarRequest) (*dto.CarResponse, error)
	Update(ctx context.Context, req *dto.UpdateCarRequest) (*dto.CarResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type carService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCarService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ICarService {
	return &carService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *carService) GetAll(ctx context.Context, clientId *uuid.UUID) ([]*dto.CarResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "license_plate"}}
	if clientId != nil {
		specs = append(specs, specification.ByClientID{ClientID: *clientId})
	}

	cars, err := uow.CarRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list cars")
	}

	result := make([]*dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		result = append(result, toCarResponse(c))
	}
	return result, nil
}

func (s *carService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Car, error) {
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find car")
	}
	if car == nil {
		return nil, apperror.NotFound("car", id)
	}
	return car, nil
}

func (s *carService) Show(ctx context.Context, id uuid.UUID) (*dto.CarResponse, error) {
	car, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// checkOwnerAndPlate validates the owner exists and the plate is not taken by another car.
func (s *carService) checkOwnerAndPlate(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, plate string, self uuid.UUID) error {
	owner, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: clientId})
	if err != nil {
		return apperror.Storage(err, "find client")
	}
	if owner == nil {
		return apperror.Validation("client %s does not exist", clientId)
	}

	other, err := uow.CarRepository().FindOne(ctx, specification.Filter("license_plate", plate))
	if err != nil {
		return apperror.Storage(err, "find car by plate")
	}
	if other != nil && other.Id != self {
		return apperror.Conflict("license plate %s is already registered", plate)
	}
	return nil
}

func carStatusOrDefault(status string) entity.CarStatus {
	if status == "" {
		return entity.CarStatusActive
	}
	return entity.CarStatus(status)
}

func (s *carService) Create(ctx context.Context, req *dto.CreateCarRequest) (*dto.CarResponse, error) {
	status := carStatusOrDefault(req.Status)
	if !status.Valid() {
		return nil, apperror.Validation("unknown car status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkOwnerAndPlate(ctx, uow, req.ClientId, req.LicensePlate, uuid.Nil); err != nil {
		return nil, err
	}

	car := entity.Car{
		Id:           uuid.New(),
		ClientId:     req.ClientId,
		Brand:        req.Brand,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Status:       status,
	}
	if err := uow.CarRepository().Create(ctx, &car); err != nil {
		return nil, apperror.Storage(err, "create car")
	}

	s.logger.Info("CAR", "Car registered", map[string]interface{}{
		"car_id":        car.Id,
		"client_id":     car.ClientId,
		"license_plate": car.LicensePlate,
	})
	return toCarResponse(&car), nil
}

func (s *carService) Update(ctx context.Context, req *dto.UpdateCarRequest) (*dto.CarResponse, error) {
	status := carStatusOrDefault(req.Status)
	if !status.Valid() {
		return nil, apperror.Validation("unknown car status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnerAndPlate(ctx, uow, req.ClientId, req.LicensePlate, car.Id); err != nil {
		return nil, err
	}

	car.ClientId = req.ClientId
	car.Brand = req.Brand
	car.Model = req.Model
	car.LicensePlate = req.LicensePlate
	car.Status = status

	if err := uow.CarRepository().Update(ctx, car); err != nil {
		return nil, apperror.Storage(err, "update car")
	}
	return toCarResponse(car), nil
}

func (s *carService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.find(ctx, uow, id); err != nil {
		return err
	}

	subs, err := uow.SubscriptionRepository().Count(ctx, specification.ByCarID{CarID: id})
	if err != nil {
		return apperror.Storage(err, "count subscriptions")
	}
	if subs > 0 {
		return apperror.Conflict("car %s is tracked by %d subscription(s)", id, subs)
	}
	interventions, err := uow.InterventionRepository().Count(ctx, specification.ByCarID{CarID: id})
	if err != nil {
		return apperror.Storage(err, "count interventions")
	}
	installations, err := uow.InstallationRepository().Count(ctx, specification.ByCarID{CarID: id})
	if err != nil {
		return apperror.Storage(err, "count installations")
	}
	if interventions > 0 || installations > 0 {
		return apperror.Conflict("car %s has %d intervention(s) and %d installation(s) on record", id, interventions, installations)
	}

	if err := uow.CarRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete car")
	}
	return nil
}
