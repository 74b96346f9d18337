package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDeviceService interface {
	GetAll(ctx context.Context, req *dto.ListDevicesRequest) ([]*dto.DeviceResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DeviceResponse, error)
	Create(ctx context.Context, req *dto.CreateDeviceRequest) (*dto.DeviceResponse, error)
	Update(ctx context.Context, req *dto.UpdateDeviceRequest) (*dto.DeviceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type deviceService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewDeviceService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IDeviceService {
	return &deviceService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// installedDevices returns the ids of devices held by an installation that is not cancelled.
func installedDevices(ctx context.Context, uow unitofwork.UnitOfWork) (map[uuid.UUID]struct{}, error) {
	installations, err := uow.InstallationRepository().FindAll(ctx,
		specification.StatusNot{Status: string(entity.InstallationStatusCancelled)})
	if err != nil {
		return nil, apperror.Storage(err, "list installations")
	}
	ids := make(map[uuid.UUID]struct{}, len(installations))
	for _, i := range installations {
		ids[i.DeviceId] = struct{}{}
	}
	return ids, nil
}

func (s *deviceService) GetAll(ctx context.Context, req *dto.ListDevicesRequest) ([]*dto.DeviceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "imei"}}
	if req != nil && req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	devices, err := uow.DeviceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Storage(err, "list devices")
	}
	installed, err := installedDevices(ctx, uow)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		_, ok := installed[d.Id]
		result = append(result, toDeviceResponse(d, ok))
	}
	return result, nil
}

func findDevice(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Device, error) {
	device, err := uow.DeviceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find device")
	}
	if device == nil {
		return nil, apperror.NotFound("device", id)
	}
	return device, nil
}

func (s *deviceService) Show(ctx context.Context, id uuid.UUID) (*dto.DeviceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	device, err := findDevice(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	installed, err := installedDevices(ctx, uow)
	if err != nil {
		return nil, err
	}
	_, ok := installed[device.Id]
	return toDeviceResponse(device, ok), nil
}

func (s *deviceService) checkImei(ctx context.Context, uow unitofwork.UnitOfWork, imei string, self uuid.UUID) error {
	other, err := uow.DeviceRepository().FindOne(ctx, specification.Filter("imei", imei))
	if err != nil {
		return apperror.Storage(err, "find device by imei")
	}
	if other != nil && other.Id != self {
		return apperror.Conflict("IMEI %s is already registered", imei)
	}
	return nil
}

func deviceStatusOrDefault(status string) entity.DeviceStatus {
	if status == "" {
		return entity.DeviceStatusActive
	}
	return entity.DeviceStatus(status)
}

// Create registers a tracker. The IMEI must be exactly 15 digits and unique.
func (s *deviceService) Create(ctx context.Context, req *dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkImei(ctx, uow, req.Imei, uuid.Nil); err != nil {
		return nil, err
	}

	device := entity.Device{
		Id:       uuid.New(),
		Imei:     req.Imei,
		Model:    req.Model,
		Provider: req.Provider,
		Status:   deviceStatusOrDefault(req.Status),
	}
	if err := uow.DeviceRepository().Create(ctx, &device); err != nil {
		return nil, apperror.Storage(err, "create device")
	}

	s.logger.Info("DEVICE", "Device registered", map[string]interface{}{
		"device_id": device.Id,
		"imei":      device.Imei,
	})
	return toDeviceResponse(&device, false), nil
}

func (s *deviceService) Update(ctx context.Context, req *dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	device, err := findDevice(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.checkImei(ctx, uow, req.Imei, device.Id); err != nil {
		return nil, err
	}

	device.Imei = req.Imei
	device.Model = req.Model
	device.Provider = req.Provider
	device.Status = deviceStatusOrDefault(req.Status)

	if err := uow.DeviceRepository().Update(ctx, device); err != nil {
		return nil, apperror.Storage(err, "update device")
	}

	installed, err := installedDevices(ctx, uow)
	if err != nil {
		return nil, err
	}
	_, ok := installed[device.Id]
	return toDeviceResponse(device, ok), nil
}

// Delete refuses to remove a device that any installation still references.
func (s *deviceService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findDevice(ctx, uow, id); err != nil {
		return err
	}

	n, err := uow.InstallationRepository().Count(ctx, specification.ByDeviceID{DeviceID: id})
	if err != nil {
		return apperror.Storage(err, "count installations")
	}
	if n > 0 {
		return apperror.Conflict("device %s is referenced by %d installation(s)", id, n)
	}

	if err := uow.DeviceRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete device")
	}
	return nil
}
