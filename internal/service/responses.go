package service

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/pkg/ledger"
)

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	return &dto.CarResponse{
		Id:           c.Id,
		ClientId:     c.ClientId,
		Brand:        c.Brand,
		Model:        c.Model,
		LicensePlate: c.LicensePlate,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		Id:          m.Id,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDurationResponse(d *entity.SubscriptionDuration, label string) *dto.DurationResponse {
	return &dto.DurationResponse{
		Id:           d.Id,
		Name:         d.Name,
		Months:       d.Months,
		Price:        d.Price,
		PriceDisplay: ledger.FormatAmount(d.Price, label),
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment, label string) *dto.PaymentResponse {
	res := &dto.PaymentResponse{
		Id:             p.Id,
		Date:           p.Date.Format(ledger.DateLayout),
		Amount:         p.Amount,
		AmountDisplay:  ledger.FormatAmount(p.Amount, label),
		MethodId:       p.MethodId,
		ClientId:       p.ClientId,
		SubscriptionId: p.SubscriptionId,
		Status:         string(p.Status),
		Reference:      p.Reference,
		CreatedAt:      p.CreatedAt,
	}
	if p.Receipt != nil {
		res.Receipt = &dto.ReceiptFileResponse{
			FileName:    p.Receipt.FileName,
			Size:        p.Receipt.Size,
			ContentType: p.Receipt.ContentType,
		}
	}
	return res
}

func toPaymentResponses(payments []*entity.Payment, label string) []*dto.PaymentResponse {
	result := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, toPaymentResponse(p, label))
	}
	return result
}

func toSubscriptionResponse(s *entity.Subscription, catalog []*entity.SubscriptionDuration, label string) *dto.SubscriptionResponse {
	duration := ledger.DurationOrZero(catalog, s.DurationId)
	return &dto.SubscriptionResponse{
		Id:                     s.Id,
		ClientId:               s.ClientId,
		DurationId:             s.DurationId,
		DurationName:           duration.Name,
		CarId:                  s.CarId,
		StartDate:              s.StartDate.Format(ledger.DateLayout),
		EndDate:                s.EndDate.Format(ledger.DateLayout),
		Status:                 string(s.Status),
		PaymentStatus:          string(s.PaymentStatus),
		RemainingAmount:        s.RemainingAmount,
		RemainingAmountDisplay: ledger.FormatAmount(s.RemainingAmount, label),
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func toBalanceResponse(s *entity.Subscription, b ledger.Balance, label string) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		SubscriptionId:   s.Id,
		TotalDue:         b.TotalDue,
		TotalDueDisplay:  ledger.FormatAmount(b.TotalDue, label),
		TotalPaid:        b.TotalPaid,
		TotalPaidDisplay: ledger.FormatAmount(b.TotalPaid, label),
		Remaining:        b.Remaining,
		RemainingDisplay: ledger.FormatAmount(b.Remaining, label),
		PaymentStatus:    string(ledger.PaymentStatusFor(b)),
	}
}

func toInvoiceResponse(inv *entity.Invoice, label string) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			Description:      it.Description,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			UnitPriceDisplay: ledger.FormatAmount(it.UnitPrice, label),
			Total:            it.Total,
			TotalDisplay:     ledger.FormatAmount(it.Total, label),
		})
	}
	return &dto.InvoiceResponse{
		Id:                 inv.Id,
		Number:             inv.Number,
		ClientId:           inv.ClientId,
		SubscriptionId:     inv.SubscriptionId,
		Date:               inv.Date.Format(ledger.DateLayout),
		DueDate:            inv.DueDate.Format(ledger.DateLayout),
		Items:              items,
		TotalAmount:        inv.TotalAmount,
		TotalAmountDisplay: ledger.FormatAmount(inv.TotalAmount, label),
		Status:             string(inv.Status),
		Notes:              inv.Notes,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func toDeviceResponse(d *entity.Device, installed bool) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		Id:        d.Id,
		Imei:      d.Imei,
		Model:     d.Model,
		Provider:  d.Provider,
		Status:    string(d.Status),
		Installed: installed,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toInstallerResponse(i *entity.Installer, installations int64) *dto.InstallerResponse {
	return &dto.InstallerResponse{
		Id:            i.Id,
		Name:          i.Name,
		City:          i.City,
		Phone:         i.Phone,
		Installations: installations,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toInstallationResponse(i *entity.Installation, installer *entity.Installer, device *entity.Device) *dto.InstallationResponse {
	return &dto.InstallationResponse{
		Id:            i.Id,
		ClientId:      i.ClientId,
		InstallerId:   i.InstallerId,
		InstallerName: installer.Name,
		DeviceId:      i.DeviceId,
		DeviceImei:    device.Imei,
		CarId:         i.CarId,
		Date:          i.Date.Format(ledger.DateLayout),
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toInterventionTypeResponse(t *entity.InterventionType, label string) *dto.InterventionTypeResponse {
	return &dto.InterventionTypeResponse{
		Id:              t.Id,
		Name:            t.Name,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		Price:           t.Price,
		PriceDisplay:    ledger.FormatAmount(t.Price, label),
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toInterventionResponse(i *entity.Intervention, t *entity.InterventionType, label string) *dto.InterventionResponse {
	return &dto.InterventionResponse{
		Id:           i.Id,
		CarId:        i.CarId,
		TypeId:       i.TypeId,
		TypeName:     t.Name,
		InstallerId:  i.InstallerId,
		Date:         i.Date.Format(ledger.DateLayout),
		Status:       string(i.Status),
		Notes:        i.Notes,
		Price:        t.Price,
		PriceDisplay: ledger.FormatAmount(t.Price, label),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
