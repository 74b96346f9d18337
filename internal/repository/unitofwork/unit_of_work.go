package unitofwork

import (
	"context"

	"gps-tracking-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ClientRepository() contract.ClientRepository
	CarRepository() contract.CarRepository
	PaymentMethodRepository() contract.PaymentMethodRepository
	DurationRepository() contract.DurationRepository
	SubscriptionRepository() contract.SubscriptionRepository
	PaymentRepository() contract.PaymentRepository
	InvoiceRepository() contract.InvoiceRepository
	DeviceRepository() contract.DeviceRepository
	InstallerRepository() contract.InstallerRepository
	InstallationRepository() contract.InstallationRepository
	InterventionTypeRepository() contract.InterventionTypeRepository
	InterventionRepository() contract.InterventionRepository
}
