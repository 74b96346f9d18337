package mapper

import (
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/model"
)

type PaymentMethodMapper struct{}

func NewPaymentMethodMapper() *PaymentMethodMapper {
	return &PaymentMethodMapper{}
}

func (m *PaymentMethodMapper) ToEntity(p *model.PaymentMethod) *entity.PaymentMethod {
	if p == nil {
		return nil
	}
	return &entity.PaymentMethod{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PaymentMethodMapper) ToModel(p *entity.PaymentMethod) *model.PaymentMethod {
	if p == nil {
		return nil
	}
	return &model.PaymentMethod{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

// ToEntity never restores a receipt; receipts are not stored.
func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:             p.Id,
		Date:           p.Date.UTC(),
		Amount:         p.Amount,
		MethodId:       p.MethodId,
		ClientId:       p.ClientId,
		SubscriptionId: p.SubscriptionId,
		Status:         entity.PaymentStatus(p.Status),
		Reference:      p.Reference,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:             p.Id,
		Date:           p.Date,
		Amount:         p.Amount,
		MethodId:       p.MethodId,
		ClientId:       p.ClientId,
		SubscriptionId: p.SubscriptionId,
		Status:         string(p.Status),
		Reference:      p.Reference,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
