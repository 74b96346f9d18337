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

type IInstallationService interface {
	GetAll(ctx context.Context, req *dto.ListInstallationsRequest) ([]*dto.InstallationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InstallationResponse, error)
	Create(ctx context.Context, req *dto.CreateInstallationRequest) (*dto.InstallationResponse, error)
	Update(ctx context.Context, req *dto.UpdateInstallationRequest) (*dto.InstallationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type installationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	clock      Clock
}

func NewInstallationService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, clock Clock) IInstallationService {
	return &installationService{
		uowFactory: uowFactory,
		logger:     logger,
		clock:      clockOrSystem(clock),
	}
}

func (s *installationService) GetAll(ctx context.Context, req *dto.ListInstallationsRequest) ([]*dto.InstallationResponse, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "date", Desc: true}}
	if req != nil {
		clientId, err := parseOptionalUUID("client_id", req.ClientId)
		if err != nil {
			return nil, err
		}
		if clientId != nil {
			specs = append(specs, specification.ByClientID{ClientID: *clientId})
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
	installations, err := uow.InstallationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list installations")
	}

	result := make([]*dto.InstallationResponse, 0, len(installations))
	for _, i := range installations {
		res, err := s.respond(ctx, uow, i)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *installationService) respond(ctx context.Context, uow unitofwork.UnitOfWork, i *entity.Installation) (*dto.InstallationResponse, error) {
	installer, err := findInstaller(ctx, uow, i.InstallerId)
	if err != nil {
		return nil, err
	}
	device, err := findDevice(ctx, uow, i.DeviceId)
	if err != nil {
		return nil, err
	}
	return toInstallationResponse(i, installer, device), nil
}

func findInstallation(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Installation, error) {
	installation, err := uow.InstallationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find installation")
	}
	if installation == nil {
		return nil, apperror.NotFound("installation", id)
	}
	return installation, nil
}

func (s *installationService) Show(ctx context.Context, id uuid.UUID) (*dto.InstallationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	installation, err := findInstallation(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, uow, installation)
}

// checkParties validates the references of an installation. An inactive device
// cannot be installed, and a device already held by another live installation
// is a conflict.
func (s *installationService) checkParties(ctx context.Context, uow unitofwork.UnitOfWork, i *entity.Installation) error {
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: i.ClientId})
	if err != nil {
		return apperror.Storage(err, "find client")
	}
	if client == nil {
		return apperror.Validation("client %s does not exist", i.ClientId)
	}

	installer, err := uow.InstallerRepository().FindOne(ctx, specification.ByID{ID: i.InstallerId})
	if err != nil {
		return apperror.Storage(err, "find installer")
	}
	if installer == nil {
		return apperror.Validation("installer %s does not exist", i.InstallerId)
	}

	if err := ensureCar(ctx, uow, i.CarId, i.ClientId); err != nil {
		return err
	}

	device, err := uow.DeviceRepository().FindOne(ctx, specification.ByID{ID: i.DeviceId})
	if err != nil {
		return apperror.Storage(err, "find device")
	}
	if device == nil {
		return apperror.Validation("device %s does not exist", i.DeviceId)
	}
	if i.Status == entity.InstallationStatusCancelled {
		return nil
	}
	if device.Status != entity.DeviceStatusActive {
		return apperror.Validation("device %s is not active", device.Imei)
	}

	live, err := uow.InstallationRepository().FindAll(ctx,
		specification.ByDeviceID{DeviceID: i.DeviceId},
		specification.StatusNot{Status: string(entity.InstallationStatusCancelled)},
	)
	if err != nil {
		return apperror.Storage(err, "list device installations")
	}
	for _, other := range live {
		if other.Id != i.Id {
			return apperror.Conflict("device %s is already installed", device.Imei)
		}
	}
	return nil
}

func installationStatusOrDefault(status string) entity.InstallationStatus {
	if status == "" {
		return entity.InstallationStatusPending
	}
	return entity.InstallationStatus(status)
}

func (s *installationService) Create(ctx context.Context, req *dto.CreateInstallationRequest) (*dto.InstallationResponse, error) {
	date, err := parseDateOr("date", req.Date, ledger.Date(s.clock()))
	if err != nil {
		return nil, err
	}
	installation := entity.Installation{
		Id:          uuid.New(),
		ClientId:    req.ClientId,
		InstallerId: req.InstallerId,
		DeviceId:    req.DeviceId,
		CarId:       req.CarId,
		Date:        date,
		Status:      installationStatusOrDefault(req.Status),
	}
	if !installation.Status.Valid() {
		return nil, apperror.Validation("unknown installation status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	if err := s.checkParties(ctx, uow, &installation); err != nil {
		return nil, err
	}
	if err := uow.InstallationRepository().Create(ctx, &installation); err != nil {
		return nil, apperror.Storage(err, "create installation")
	}
	res, err := s.respond(ctx, uow, &installation)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit installation")
	}

	s.logger.Info("INSTALLATION", "Installation scheduled", map[string]interface{}{
		"installation_id": installation.Id,
		"client_id":       installation.ClientId,
		"device_id":       installation.DeviceId,
		"status":          installation.Status,
	})
	return res, nil
}

func (s *installationService) Update(ctx context.Context, req *dto.UpdateInstallationRequest) (*dto.InstallationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	installation, err := findInstallation(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	date, err := parseDateOr("date", req.Date, installation.Date)
	if err != nil {
		return nil, err
	}

	installation.ClientId = req.ClientId
	installation.InstallerId = req.InstallerId
	installation.DeviceId = req.DeviceId
	installation.CarId = req.CarId
	installation.Date = date
	if req.Status != "" {
		installation.Status = entity.InstallationStatus(req.Status)
	}
	if !installation.Status.Valid() {
		return nil, apperror.Validation("unknown installation status %q", req.Status)
	}

	if err := s.checkParties(ctx, uow, installation); err != nil {
		return nil, err
	}
	if err := uow.InstallationRepository().Update(ctx, installation); err != nil {
		return nil, apperror.Storage(err, "update installation")
	}
	res, err := s.respond(ctx, uow, installation)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit installation")
	}
	return res, nil
}

func (s *installationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findInstallation(ctx, uow, id); err != nil {
		return err
	}
	if err := uow.InstallationRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete installation")
	}
	return nil
}
