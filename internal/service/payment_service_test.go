package service

import (
	"strings"
	"testing"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/pkg/events"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentCreate_LinkedToSubscription(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	p, err := env.payments.Create(env.ctx, &dto.CreatePaymentRequest{
		Date:           "2024-02-10",
		Amount:         dec("120.50"),
		MethodId:       f.method.Id,
		ClientId:       f.client.Id,
		SubscriptionId: &f.sub.Id,
		Receipt:        &entity.ReceiptFile{FileName: "recu.pdf", Size: 2048, ContentType: "application/pdf"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.Reference, "PAY-"))
	assert.Equal(t, "paid", p.Status)
	assert.Equal(t, "2024-02-10", p.Date)
	require.NotNil(t, p.Receipt)
	assert.Equal(t, "recu.pdf", p.Receipt.FileName)

	sub, err := env.subscriptions.Show(env.ctx, f.sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "partial", sub.PaymentStatus)
	assert.True(t, dec("179.50").Equal(sub.RemainingAmount))

	stored, err := env.payments.Show(env.ctx, p.Id)
	require.NoError(t, err)
	assert.Nil(t, stored.Receipt)
	assert.True(t, dec("120.50").Equal(stored.Amount))
	assert.Contains(t, env.publisher.types(), events.PaymentRecorded)
}

func TestPaymentCreate_PendingDoesNotSettle(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	_, err := env.payments.Create(env.ctx, &dto.CreatePaymentRequest{
		Amount: dec("300"), MethodId: f.method.Id, ClientId: f.client.Id,
		SubscriptionId: &f.sub.Id, Status: "pending",
	})
	require.NoError(t, err)

	balance, err := env.subscriptions.Balance(env.ctx, f.sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "unpaid", balance.PaymentStatus)
	assert.True(t, dec("300").Equal(balance.Remaining))
}

func TestPaymentCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	other := env.client(t, "Rif")

	cases := map[string]dto.CreatePaymentRequest{
		"zero amount":    {Amount: dec("0"), MethodId: f.method.Id, ClientId: f.client.Id},
		"negative":       {Amount: dec("-5"), MethodId: f.method.Id, ClientId: f.client.Id},
		"unknown status": {Amount: dec("5"), MethodId: f.method.Id, ClientId: f.client.Id, Status: "refunded"},
		"unknown method": {Amount: dec("5"), MethodId: uuid.New(), ClientId: f.client.Id},
		"unknown client": {Amount: dec("5"), MethodId: f.method.Id, ClientId: uuid.New()},
		"foreign sub":    {Amount: dec("5"), MethodId: f.method.Id, ClientId: other.Id, SubscriptionId: &f.sub.Id},
		"bad date":       {Amount: dec("5"), MethodId: f.method.Id, ClientId: f.client.Id, Date: "2024-13-01"},
	}
	for name, req := range cases {
		req := req
		t.Run(name, func(t *testing.T) {
			_, err := env.payments.Create(env.ctx, &req)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
}

func TestPaymentList_FiltersAndOrder(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	create := func(date, amount, status string, sub *uuid.UUID) {
		_, err := env.payments.Create(env.ctx, &dto.CreatePaymentRequest{
			Date: date, Amount: dec(amount), MethodId: f.method.Id, ClientId: f.client.Id,
			SubscriptionId: sub, Status: status,
		})
		require.NoError(t, err)
	}
	create("2024-03-01", "30", "paid", &f.sub.Id)
	create("2024-01-15", "10", "paid", &f.sub.Id)
	create("2024-02-01", "20", "pending", nil)

	all, err := env.payments.List(env.ctx, &dto.ListPaymentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-15", "2024-02-01", "2024-03-01"},
		lo.Map(all, func(p *dto.PaymentResponse, _ int) string { return p.Date }))

	linked, err := env.payments.List(env.ctx, &dto.ListPaymentsRequest{SubscriptionId: f.sub.Id.String()})
	require.NoError(t, err)
	assert.Len(t, linked, 2)

	pending, err := env.payments.List(env.ctx, &dto.ListPaymentsRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].SubscriptionId)

	window, err := env.payments.List(env.ctx, &dto.ListPaymentsRequest{From: "2024-01-20", To: "2024-03-01"})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	_, err = env.payments.List(env.ctx, &dto.ListPaymentsRequest{ClientId: "not-a-uuid"})
	assert.True(t, apperror.IsValidation(err))
}

func TestPaymentUpdate_RefreshesSubscription(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	res := env.pay(t, f.sub.Id, f.method.Id, "300")
	assert.Equal(t, "paid", res.Subscription.PaymentStatus)

	cancelled := "cancelled"
	p, err := env.payments.Update(env.ctx, &dto.UpdatePaymentRequest{Id: res.Payment.Id, Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", p.Status)
	assert.Equal(t, res.Payment.Reference, p.Reference)

	sub, err := env.subscriptions.Show(env.ctx, f.sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "unpaid", sub.PaymentStatus)
	assert.True(t, dec("300").Equal(sub.RemainingAmount))
}

func TestPaymentDelete_RefreshesSubscription(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	env.pay(t, f.sub.Id, f.method.Id, "100")
	second := env.pay(t, f.sub.Id, f.method.Id, "50")

	require.NoError(t, env.payments.Delete(env.ctx, second.Payment.Id))

	sub, err := env.subscriptions.Show(env.ctx, f.sub.Id)
	require.NoError(t, err)
	assert.True(t, dec("200").Equal(sub.RemainingAmount))
	assert.Contains(t, env.publisher.types(), events.PaymentDeleted)
}

func TestPayment_NotFound(t *testing.T) {
	env := newTestEnv(t)
	amount := dec("10")

	_, err := env.payments.Show(env.ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	_, err = env.payments.Update(env.ctx, &dto.UpdatePaymentRequest{Id: uuid.New(), Amount: &amount})
	assert.True(t, apperror.IsNotFound(err))

	assert.True(t, apperror.IsNotFound(env.payments.Delete(env.ctx, uuid.New())))
}
