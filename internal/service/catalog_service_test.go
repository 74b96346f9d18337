package service

import (
	"testing"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCatalog_OrderedAndInvalidated(t *testing.T) {
	env := newTestEnv(t)
	year := env.duration(t, "1 An", 12, "900")
	env.duration(t, "3 Mois", 3, "300")
	env.duration(t, "6 Mois", 6, "500")

	all, err := env.durations.GetAll(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 12}, lo.Map(all, func(d *dto.DurationResponse, _ int) int { return d.Months }))

	_, err = env.durations.Update(env.ctx, &dto.UpdateDurationRequest{
		Id: year.Id, Name: "1 An", Months: 12, Price: dec("850"),
	})
	require.NoError(t, err)

	catalog, err := env.durations.Catalog(env.ctx)
	require.NoError(t, err)
	last := catalog[len(catalog)-1]
	assert.Equal(t, year.Id, last.Id)
	assert.True(t, dec("850").Equal(last.Price))
}

func TestDurationUpdate_RefreshesStoredBalances(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	env.pay(t, f.sub.Id, f.method.Id, "100")

	_, err := env.durations.Update(env.ctx, &dto.UpdateDurationRequest{
		Id: f.duration.Id, Name: f.duration.Name, Months: 3, Price: dec("500"),
	})
	require.NoError(t, err)

	shown, err := env.subscriptions.Show(env.ctx, f.sub.Id)
	require.NoError(t, err)
	balance, err := env.subscriptions.Balance(env.ctx, f.sub.Id)
	require.NoError(t, err)

	assert.True(t, dec("400").Equal(shown.RemainingAmount), shown.RemainingAmount.String())
	assert.True(t, balance.Remaining.Equal(shown.RemainingAmount))
	assert.Equal(t, "partial", shown.PaymentStatus)
	assert.Equal(t, f.sub.EndDate, shown.EndDate)

	listed, err := env.subscriptions.GetAll(env.ctx, &dto.ListSubscriptionsRequest{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, dec("400").Equal(listed[0].RemainingAmount))
}

func TestDuration_ValidationAndDelete(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.durations.Create(env.ctx, &dto.CreateDurationRequest{Name: "Zero", Months: 0, Price: dec("10")})
	assert.True(t, apperror.IsValidation(err))
	_, err = env.durations.Create(env.ctx, &dto.CreateDurationRequest{Name: "Neg", Months: 1, Price: dec("-1")})
	assert.True(t, apperror.IsValidation(err))

	f := env.ledgerFixture(t)
	assert.True(t, apperror.IsConflict(env.durations.Delete(env.ctx, f.duration.Id)))

	unused := env.duration(t, "2 Ans", 24, "1600")
	require.NoError(t, env.durations.Delete(env.ctx, unused.Id))
	_, err = env.durations.Show(env.ctx, unused.Id)
	assert.True(t, apperror.IsNotFound(err))

	catalog, err := env.durations.Catalog(env.ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestCar_PlateUniqueAndOwnerRequired(t *testing.T) {
	env := newTestEnv(t)
	owner := env.client(t, "Atlas")

	_, err := env.cars.Create(env.ctx, &dto.CreateCarRequest{
		ClientId: uuid.New(), Brand: "Dacia", Model: "Duster", LicensePlate: "1-A-1",
	})
	assert.True(t, apperror.IsValidation(err))

	car, err := env.cars.Create(env.ctx, &dto.CreateCarRequest{
		ClientId: owner.Id, Brand: "Dacia", Model: "Duster", LicensePlate: "1-A-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", car.Status)

	_, err = env.cars.Create(env.ctx, &dto.CreateCarRequest{
		ClientId: owner.Id, Brand: "Fiat", Model: "Doblo", LicensePlate: "1-A-1",
	})
	assert.True(t, apperror.IsConflict(err))

	mine, err := env.cars.GetAll(env.ctx, &owner.Id)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCarDelete_RefusedWhileTracked(t *testing.T) {
	env := newTestEnv(t)
	owner := env.client(t, "Atlas")
	duration := env.duration(t, "3 Mois", 3, "300")
	car, err := env.cars.Create(env.ctx, &dto.CreateCarRequest{
		ClientId: owner.Id, Brand: "Dacia", Model: "Logan", LicensePlate: "77-H-7",
	})
	require.NoError(t, err)

	sub, err := env.subscriptions.Create(env.ctx, &dto.CreateSubscriptionRequest{
		ClientId: owner.Id, DurationId: duration.Id, StartDate: "2024-01-01", CarId: &car.Id,
	})
	require.NoError(t, err)
	assert.True(t, apperror.IsConflict(env.cars.Delete(env.ctx, car.Id)))

	require.NoError(t, env.subscriptions.Delete(env.ctx, sub.Id))
	require.NoError(t, env.cars.Delete(env.ctx, car.Id))
}

func TestPaymentMethod_UniqueAndInUse(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	_, err := env.methods.Create(env.ctx, &dto.CreatePaymentMethodRequest{Name: f.method.Name})
	assert.True(t, apperror.IsConflict(err))

	env.pay(t, f.sub.Id, f.method.Id, "10")
	assert.True(t, apperror.IsConflict(env.methods.Delete(env.ctx, f.method.Id)))

	transfer := env.method(t, "Virement")
	require.NoError(t, env.methods.Delete(env.ctx, transfer.Id))

	methods, err := env.methods.GetAll(env.ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 1)
}
