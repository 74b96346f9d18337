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

type IInstallerService interface {
	GetAll(ctx context.Context) ([]*dto.InstallerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InstallerResponse, error)
	Create(ctx context.Context, req *dto.CreateInstallerRequest) (*dto.InstallerResponse, error)
	Update(ctx context.Context, req *dto.UpdateInstallerRequest) (*dto.InstallerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type installerService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewInstallerService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IInstallerService {
	return &installerService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func findInstaller(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Installer, error) {
	installer, err := uow.InstallerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find installer")
	}
	if installer == nil {
		return nil, apperror.NotFound("installer", id)
	}
	return installer, nil
}

func (s *installerService) respond(ctx context.Context, uow unitofwork.UnitOfWork, installer *entity.Installer) (*dto.InstallerResponse, error) {
	n, err := uow.InstallationRepository().Count(ctx, specification.ByInstallerID{InstallerID: installer.Id})
	if err != nil {
		return nil, apperror.Storage(err, "count installations")
	}
	return toInstallerResponse(installer, n), nil
}

func (s *installerService) GetAll(ctx context.Context) ([]*dto.InstallerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	installers, err := uow.InstallerRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, apperror.Storage(err, "list installers")
	}

	result := make([]*dto.InstallerResponse, 0, len(installers))
	for _, i := range installers {
		res, err := s.respond(ctx, uow, i)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *installerService) Show(ctx context.Context, id uuid.UUID) (*dto.InstallerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	installer, err := findInstaller(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, uow, installer)
}

func (s *installerService) Create(ctx context.Context, req *dto.CreateInstallerRequest) (*dto.InstallerResponse, error) {
	installer := entity.Installer{
		Id:    uuid.New(),
		Name:  req.Name,
		City:  req.City,
		Phone: req.Phone,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InstallerRepository().Create(ctx, &installer); err != nil {
		return nil, apperror.Storage(err, "create installer")
	}

	s.logger.Info("INSTALLER", "Installer created", map[string]interface{}{
		"installer_id": installer.Id,
		"city":         installer.City,
	})
	return toInstallerResponse(&installer, 0), nil
}

func (s *installerService) Update(ctx context.Context, req *dto.UpdateInstallerRequest) (*dto.InstallerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	installer, err := findInstaller(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	installer.Name = req.Name
	installer.City = req.City
	installer.Phone = req.Phone

	if err := uow.InstallerRepository().Update(ctx, installer); err != nil {
		return nil, apperror.Storage(err, "update installer")
	}
	return s.respond(ctx, uow, installer)
}

// Delete refuses to remove an installer with installations or interventions on record.
func (s *installerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	installer, err := findInstaller(ctx, uow, id)
	if err != nil {
		return err
	}

	installations, err := uow.InstallationRepository().Count(ctx, specification.ByInstallerID{InstallerID: id})
	if err != nil {
		return apperror.Storage(err, "count installations")
	}
	interventions, err := uow.InterventionRepository().Count(ctx, specification.ByInstallerID{InstallerID: id})
	if err != nil {
		return apperror.Storage(err, "count interventions")
	}
	if installations > 0 || interventions > 0 {
		return apperror.Conflict("installer %s still has %d installation(s) and %d intervention(s)",
			installer.Name, installations, interventions)
	}

	if err := uow.InstallerRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete installer")
	}
	return nil
}
