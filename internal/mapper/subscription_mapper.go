package mapper

import (
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/model"
)

type DurationMapper struct{}

func NewDurationMapper() *DurationMapper {
	return &DurationMapper{}
}

func (m *DurationMapper) ToEntity(d *model.SubscriptionDuration) *entity.SubscriptionDuration {
	if d == nil {
		return nil
	}
	return &entity.SubscriptionDuration{
		Id:          d.Id,
		Name:        d.Name,
		Months:      d.Months,
		Price:       d.Price,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m *DurationMapper) ToModel(d *entity.SubscriptionDuration) *model.SubscriptionDuration {
	if d == nil {
		return nil
	}
	return &model.SubscriptionDuration{
		Id:          d.Id,
		Name:        d.Name,
		Months:      d.Months,
		Price:       d.Price,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:              s.Id,
		ClientId:        s.ClientId,
		DurationId:      s.DurationId,
		CarId:           s.CarId,
		StartDate:       s.StartDate.UTC(),
		EndDate:         s.EndDate.UTC(),
		Status:          entity.SubscriptionStatus(s.Status),
		PaymentStatus:   entity.SubscriptionPaymentStatus(s.PaymentStatus),
		RemainingAmount: s.RemainingAmount,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:              s.Id,
		ClientId:        s.ClientId,
		DurationId:      s.DurationId,
		CarId:           s.CarId,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		Status:          string(s.Status),
		PaymentStatus:   string(s.PaymentStatus),
		RemainingAmount: s.RemainingAmount,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
