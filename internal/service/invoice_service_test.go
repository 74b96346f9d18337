package service

import (
	"testing"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceCreate_TotalsAndNumbering(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")

	inv, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId: client.Id,
		Items: []dto.InvoiceItemRequest{
			{Description: "Installation", Quantity: 1, UnitPrice: dec("200")},
			{Description: "Boîtier GPS", Quantity: 2, UnitPrice: dec("350.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "FACT-2024-0001", inv.Number)
	assert.Equal(t, "unpaid", inv.Status)
	assert.Equal(t, "2024-03-15", inv.Date)
	assert.Equal(t, "2024-04-14", inv.DueDate)
	require.Len(t, inv.Items, 2)
	assert.True(t, dec("701").Equal(inv.Items[1].Total))
	assert.True(t, dec("901").Equal(inv.TotalAmount))

	next, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId: client.Id,
		Items:    []dto.InvoiceItemRequest{{Description: "Carte SIM", Quantity: 1, UnitPrice: dec("50")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "FACT-2024-0002", next.Number)

	older, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId: client.Id,
		Date:     "2023-12-20",
		Items:    []dto.InvoiceItemRequest{{Description: "Carte SIM", Quantity: 1, UnitPrice: dec("50")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "FACT-2023-0001", older.Number)
	assert.Contains(t, env.publisher.types(), events.InvoiceCreated)
}

func TestInvoiceCreate_DefaultsToSubscriptionLine(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	inv, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId:       f.client.Id,
		SubscriptionId: &f.sub.Id,
		Date:           "2024-02-01",
		DueDate:        "2024-02-15",
	})
	require.NoError(t, err)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Abonnement GPS - 3 Mois", inv.Items[0].Description)
	assert.True(t, dec("300").Equal(inv.TotalAmount))
	assert.Equal(t, "2024-02-15", inv.DueDate)
	require.NotNil(t, inv.SubscriptionId)
	assert.Equal(t, f.sub.Id, *inv.SubscriptionId)
}

func TestInvoiceCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	other := env.client(t, "Rif")
	item := []dto.InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: dec("1")}}

	cases := map[string]dto.CreateInvoiceRequest{
		"no items":        {ClientId: f.client.Id},
		"unknown client":  {ClientId: uuid.New(), Items: item},
		"foreign sub":     {ClientId: other.Id, SubscriptionId: &f.sub.Id},
		"due before date": {ClientId: f.client.Id, Items: item, Date: "2024-03-10", DueDate: "2024-03-01"},
		"zero quantity":   {ClientId: f.client.Id, Items: []dto.InvoiceItemRequest{{Description: "x", UnitPrice: dec("1")}}},
		"negative price":  {ClientId: f.client.Id, Items: []dto.InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: dec("-1")}}},
	}
	for name, req := range cases {
		req := req
		t.Run(name, func(t *testing.T) {
			_, err := env.invoices.Create(env.ctx, &req)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
}

func TestInvoiceUpdate_RecomputesTotals(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	inv, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId: client.Id,
		Items:    []dto.InvoiceItemRequest{{Description: "Installation", Quantity: 1, UnitPrice: dec("200")}},
	})
	require.NoError(t, err)

	status := "paid"
	updated, err := env.invoices.Update(env.ctx, &dto.UpdateInvoiceRequest{
		Id:     inv.Id,
		Items:  []dto.InvoiceItemRequest{{Description: "Boîtier", Quantity: 3, UnitPrice: dec("99.99")}},
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, inv.Number, updated.Number)
	assert.Equal(t, "paid", updated.Status)
	assert.True(t, dec("299.97").Equal(updated.TotalAmount))

	shown, err := env.invoices.Show(env.ctx, inv.Id)
	require.NoError(t, err)
	require.Len(t, shown.Items, 1)
	assert.True(t, dec("299.97").Equal(shown.TotalAmount))

	bad := "void"
	_, err = env.invoices.Update(env.ctx, &dto.UpdateInvoiceRequest{Id: inv.Id, Status: &bad})
	assert.True(t, apperror.IsValidation(err))

	_, err = env.invoices.Update(env.ctx, &dto.UpdateInvoiceRequest{Id: uuid.New()})
	assert.True(t, apperror.IsNotFound(err))
}

func TestInvoiceGetAllAndDelete(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)
	other := env.client(t, "Rif")

	mine, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{ClientId: f.client.Id, SubscriptionId: &f.sub.Id})
	require.NoError(t, err)
	_, err = env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
		ClientId: other.Id,
		Items:    []dto.InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: dec("1")}},
	})
	require.NoError(t, err)

	list, err := env.invoices.GetAll(env.ctx, &dto.ListInvoicesRequest{ClientId: f.client.Id.String()})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.Id, list[0].Id)

	require.NoError(t, env.invoices.Delete(env.ctx, mine.Id))
	assert.True(t, apperror.IsNotFound(env.invoices.Delete(env.ctx, mine.Id)))

	list, err = env.invoices.GetAll(env.ctx, &dto.ListInvoicesRequest{Status: "unpaid"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReceipt_RunningBalanceAndSignedRemainder(t *testing.T) {
	env := newTestEnv(t)
	f := env.ledgerFixture(t)

	for _, p := range []struct{ date, amount string }{
		{"2024-02-01", "100"},
		{"2024-01-31", "200"},
	} {
		_, err := env.subscriptions.AddPayment(env.ctx, &dto.AddSubscriptionPaymentRequest{
			Id: f.sub.Id, Date: p.date, Amount: dec(p.amount), MethodId: f.method.Id,
		})
		require.NoError(t, err)
	}
	// Renewal is not capped, so the subscription ends up overpaid.
	_, err := env.subscriptions.Renew(env.ctx, &dto.RenewSubscriptionRequest{
		Id: f.sub.Id, Amount: dec("300"), MethodId: f.method.Id,
	})
	require.NoError(t, err)
	// Pending payments stay off the receipt.
	_, err = env.payments.Create(env.ctx, &dto.CreatePaymentRequest{
		Amount: dec("40"), MethodId: f.method.Id, ClientId: f.client.Id,
		SubscriptionId: &f.sub.Id, Status: "pending",
	})
	require.NoError(t, err)

	r, err := env.invoices.Receipt(env.ctx, f.sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "3 Mois", r.DurationName)
	require.NotNil(t, r.Client)
	assert.Equal(t, f.client.Id, r.Client.Id)

	require.Len(t, r.Lines, 3)
	assert.Equal(t, "2024-01-31", r.Lines[0].Payment.Date)
	assert.True(t, dec("100").Equal(r.Lines[0].Balance))
	assert.True(t, dec("0").Equal(r.Lines[1].Balance))
	assert.True(t, dec("-300").Equal(r.Lines[2].Balance))

	assert.True(t, dec("300").Equal(r.TotalAmount))
	assert.True(t, dec("600").Equal(r.PaidAmount))
	assert.True(t, dec("-300").Equal(r.RemainingAmount))

	_, err = env.invoices.Receipt(env.ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
