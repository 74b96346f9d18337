package unitofwork

import (
	"context"
	"fmt"

	"gps-tracking-be/internal/repository/contract"
	"gps-tracking-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

// getDB returns the open transaction when there is one. Repositories taken before Begin
// stay bound to the plain connection.
func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ClientRepository() contract.ClientRepository {
	return implementation.NewClientRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CarRepository() contract.CarRepository {
	return implementation.NewCarRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PaymentMethodRepository() contract.PaymentMethodRepository {
	return implementation.NewPaymentMethodRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DurationRepository() contract.DurationRepository {
	return implementation.NewDurationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionRepository() contract.SubscriptionRepository {
	return implementation.NewSubscriptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PaymentRepository() contract.PaymentRepository {
	return implementation.NewPaymentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InvoiceRepository() contract.InvoiceRepository {
	return implementation.NewInvoiceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DeviceRepository() contract.DeviceRepository {
	return implementation.NewDeviceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InstallerRepository() contract.InstallerRepository {
	return implementation.NewInstallerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InstallationRepository() contract.InstallationRepository {
	return implementation.NewInstallationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InterventionTypeRepository() contract.InterventionTypeRepository {
	return implementation.NewInterventionTypeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InterventionRepository() contract.InterventionRepository {
	return implementation.NewInterventionRepository(u.getDB())
}
