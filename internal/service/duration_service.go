package service

import (
	"context"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/memory"
	"gps-tracking-be/internal/repository/specification"
	"gps-tracking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IDurationService interface {
	DurationCatalog
	GetAll(ctx context.Context) ([]*dto.DurationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DurationResponse, error)
	Create(ctx context.Context, req *dto.CreateDurationRequest) (*dto.DurationResponse, error)
	Update(ctx context.Context, req *dto.UpdateDurationRequest) (*dto.DurationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type durationService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.DurationCache
	logger     logger.ILogger
	currency   string
}

func NewDurationService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.DurationCache,
	logger logger.ILogger,
	currency string,
) IDurationService {
	return &durationService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
		currency:   currency,
	}
}

// Catalog returns every duration, shortest first. Callers get their own copy.
func (s *durationService) Catalog(ctx context.Context) ([]*entity.SubscriptionDuration, error) {
	if durations, ok := s.cache.Get(); ok {
		return durations, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	durations, err := uow.DurationRepository().FindAll(ctx,
		specification.OrderBy{Field: "months"},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, apperror.Storage(err, "list durations")
	}

	s.cache.Set(durations)
	return durations, nil
}

func (s *durationService) GetAll(ctx context.Context) ([]*dto.DurationResponse, error) {
	durations, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DurationResponse, 0, len(durations))
	for _, d := range durations {
		result = append(result, toDurationResponse(d, s.currency))
	}
	return result, nil
}

func (s *durationService) Show(ctx context.Context, id uuid.UUID) (*dto.DurationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	duration, err := uow.DurationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Storage(err, "find duration")
	}
	if duration == nil {
		return nil, apperror.NotFound("subscription duration", id)
	}
	return toDurationResponse(duration, s.currency), nil
}

func validateDuration(months int, price decimal.Decimal) error {
	if months <= 0 {
		return apperror.Validation("months must be greater than zero")
	}
	if price.IsNegative() {
		return apperror.Validation("price must not be negative")
	}
	return nil
}

func (s *durationService) Create(ctx context.Context, req *dto.CreateDurationRequest) (*dto.DurationResponse, error) {
	if err := validateDuration(req.Months, req.Price); err != nil {
		return nil, err
	}

	duration := entity.SubscriptionDuration{
		Id:          uuid.New(),
		Name:        req.Name,
		Months:      req.Months,
		Price:       req.Price,
		Description: req.Description,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DurationRepository().Create(ctx, &duration); err != nil {
		return nil, apperror.Storage(err, "create duration")
	}
	s.cache.Invalidate()

	s.logger.Info("DURATION", "Duration created", map[string]interface{}{
		"duration_id": duration.Id,
		"months":      duration.Months,
		"price":       duration.Price.String(),
	})
	return toDurationResponse(&duration, s.currency), nil
}

// Update changes the catalog entry and, in the same transaction, rewrites the
// stored balance of every subscription on it. End dates are left as they were.
func (s *durationService) Update(ctx context.Context, req *dto.UpdateDurationRequest) (*dto.DurationResponse, error) {
	if err := validateDuration(req.Months, req.Price); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage(err, "begin transaction")
	}
	defer uow.Rollback()

	duration, err := uow.DurationRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Storage(err, "find duration")
	}
	if duration == nil {
		return nil, apperror.NotFound("subscription duration", req.Id)
	}

	duration.Name = req.Name
	duration.Months = req.Months
	duration.Price = req.Price
	duration.Description = req.Description

	if err := uow.DurationRepository().Update(ctx, duration); err != nil {
		return nil, apperror.Storage(err, "update duration")
	}

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specification.ByDurationID{DurationID: duration.Id})
	if err != nil {
		return nil, apperror.Storage(err, "list subscriptions")
	}
	catalog := []*entity.SubscriptionDuration{duration}
	for _, sub := range subs {
		if _, _, err := refreshSubscriptionBalance(ctx, uow, catalog, sub.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage(err, "commit duration")
	}
	s.cache.Invalidate()

	if len(subs) > 0 {
		s.logger.Info("DURATION", "Subscription balances refreshed", map[string]interface{}{
			"duration_id":   duration.Id,
			"subscriptions": len(subs),
		})
	}
	return toDurationResponse(duration, s.currency), nil
}

func (s *durationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	duration, err := uow.DurationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Storage(err, "find duration")
	}
	if duration == nil {
		return apperror.NotFound("subscription duration", id)
	}

	inUse, err := uow.SubscriptionRepository().Count(ctx, specification.ByDurationID{DurationID: id})
	if err != nil {
		return apperror.Storage(err, "count subscriptions")
	}
	if inUse > 0 {
		return apperror.Conflict("duration %s is used by %d subscription(s)", duration.Name, inUse)
	}

	if err := uow.DurationRepository().Delete(ctx, id); err != nil {
		return apperror.Storage(err, "delete duration")
	}
	s.cache.Invalidate()
	return nil
}
