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

func TestClientCreate_DefaultsToActive(t *testing.T) {
	env := newTestEnv(t)

	c := env.client(t, "Atlas")
	assert.Equal(t, "active", c.Status)

	_, err := env.clients.Create(env.ctx, &dto.CreateClientRequest{Name: "Rif", Status: "asleep"})
	assert.True(t, apperror.IsValidation(err))
}

func TestClientGetAll_SearchIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	env.client(t, "Transports Atlas")
	env.client(t, "Rif Logistique")
	env.client(t, "Atlas Location")

	found, err := env.clients.GetAll(env.ctx, "atlas")
	require.NoError(t, err)
	assert.Equal(t, []string{"Atlas Location", "Transports Atlas"},
		lo.Map(found, func(c *dto.ClientResponse, _ int) string { return c.Name }))

	all, err := env.clients.GetAll(env.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestClientUpdate(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, "Atlas")

	updated, err := env.clients.Update(env.ctx, &dto.UpdateClientRequest{
		Id: c.Id, Name: "Atlas SARL", Phone: "+212600000000", Status: "inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Atlas SARL", updated.Name)
	assert.Equal(t, "inactive", updated.Status)

	_, err = env.clients.Update(env.ctx, &dto.UpdateClientRequest{Id: uuid.New(), Name: "Ghost"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestClientDelete_RefusedWhileOwningRecords(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	err := env.clients.Delete(env.ctx, f.client.Id)
	assert.True(t, apperror.IsConflict(err))

	withCar := env.client(t, "Rif")
	_, err = env.cars.Create(env.ctx, &dto.CreateCarRequest{
		ClientId: withCar.Id, Brand: "Renault", Model: "Kangoo", LicensePlate: "5555-B-1",
	})
	require.NoError(t, err)
	assert.True(t, apperror.IsConflict(env.clients.Delete(env.ctx, withCar.Id)))

	free := env.client(t, "Souss")
	require.NoError(t, env.clients.Delete(env.ctx, free.Id))
	_, err = env.clients.Show(env.ctx, free.Id)
	assert.True(t, apperror.IsNotFound(err))

	assert.True(t, apperror.IsNotFound(env.clients.Delete(env.ctx, uuid.New())))
}

func TestClientBalance_SumsSubscriptions(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	year := env.duration(t, "1 An", 12, "900")
	second := env.subscription(t, f.client.Id, year.Id, "2024-01-01")

	env.pay(t, f.sub.Id, f.method.Id, "300")
	env.pay(t, second.Id, f.method.Id, "400")

	// A free-standing payment never settles a subscription.
	_, err := env.payments.Create(env.ctx, &dto.CreatePaymentRequest{
		Amount: dec("50"), MethodId: f.method.Id, ClientId: f.client.Id,
	})
	require.NoError(t, err)

	b, err := env.clients.Balance(env.ctx, f.client.Id)
	require.NoError(t, err)
	assert.True(t, dec("1200").Equal(b.TotalDue))
	assert.True(t, dec("700").Equal(b.TotalPaid))
	assert.True(t, dec("500").Equal(b.Overdue))

	empty := env.client(t, "Rif")
	b, err = env.clients.Balance(env.ctx, empty.Id)
	require.NoError(t, err)
	assert.True(t, b.TotalDue.IsZero())
	assert.True(t, b.Overdue.IsZero())
}

func TestClientPayments_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	for _, date := range []string{"2024-01-05", "2024-03-01", "2024-02-10"} {
		_, err := env.subscriptions.AddPayment(env.ctx, &dto.AddSubscriptionPaymentRequest{
			Id: f.sub.Id, Date: date, Amount: dec("10"), MethodId: f.method.Id,
		})
		require.NoError(t, err)
	}

	payments, err := env.clients.Payments(env.ctx, f.client.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-02-10", "2024-01-05"},
		lo.Map(payments, func(p *dto.PaymentResponse, _ int) string { return p.Date }))

	_, err = env.clients.Payments(env.ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
