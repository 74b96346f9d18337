package mapper

import (
	"encoding/json"
	"fmt"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/model"
)

type InvoiceMapper struct{}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) (*entity.Invoice, error) {
	if i == nil {
		return nil, nil
	}

	var lines []model.InvoiceItem
	if len(i.Items) > 0 {
		if err := json.Unmarshal(i.Items, &lines); err != nil {
			return nil, fmt.Errorf("decode items of invoice %s: %w", i.Number, err)
		}
	}
	items := make([]entity.InvoiceItem, len(lines))
	for k, l := range lines {
		items[k] = entity.InvoiceItem{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		}
	}

	return &entity.Invoice{
		Id:             i.Id,
		Number:         i.Number,
		ClientId:       i.ClientId,
		SubscriptionId: i.SubscriptionId,
		Date:           i.Date.UTC(),
		DueDate:        i.DueDate.UTC(),
		Items:          items,
		TotalAmount:    i.TotalAmount,
		Status:         entity.InvoiceStatus(i.Status),
		Notes:          i.Notes,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}, nil
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) (*model.Invoice, error) {
	if i == nil {
		return nil, nil
	}

	lines := make([]model.InvoiceItem, len(i.Items))
	for k, it := range i.Items {
		lines[k] = model.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encode items of invoice %s: %w", i.Number, err)
	}

	return &model.Invoice{
		Id:             i.Id,
		Number:         i.Number,
		ClientId:       i.ClientId,
		SubscriptionId: i.SubscriptionId,
		Date:           i.Date,
		DueDate:        i.DueDate,
		Items:          raw,
		TotalAmount:    i.TotalAmount,
		Status:         string(i.Status),
		Notes:          i.Notes,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}, nil
}
