package ledger

import (
	"testing"
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice_RecomputesTotals(t *testing.T) {
	client, sub, _ := fixture()
	items := []entity.InvoiceItem{
		{Description: "Boitier GPS", Quantity: 2, UnitPrice: dec("150"), Total: dec("1")},
	}

	inv := BuildInvoice(client, sub, items, day(2024, time.March, 15), day(2024, time.April, 15), "")
	require.Len(t, inv.Items, 1)
	assertAmount(t, "300", inv.Items[0].Total)
	assertAmount(t, "300", inv.TotalAmount)
	assert.Equal(t, entity.InvoiceStatusUnpaid, inv.Status)
	assert.Equal(t, client.Id, inv.ClientId)
	require.NotNil(t, inv.SubscriptionId)
	assert.Equal(t, sub.Id, *inv.SubscriptionId)

	inv.Items[0].Quantity = 3
	RecomputeInvoice(inv)
	assertAmount(t, "450", inv.Items[0].Total)
	assertAmount(t, "450", inv.TotalAmount)
}

func TestBuildInvoice_DoesNotAliasCallerItems(t *testing.T) {
	client, _, _ := fixture()
	items := []entity.InvoiceItem{{Description: "Pose", Quantity: 1, UnitPrice: dec("200")}}

	inv := BuildInvoice(client, nil, items, day(2024, time.March, 15), time.Time{}, "note")
	inv.Items[0].Quantity = 5

	assert.Equal(t, 1, items[0].Quantity)
	assert.Nil(t, inv.SubscriptionId)
	assert.Equal(t, day(2024, time.April, 14), inv.DueDate)
	assert.Equal(t, "note", inv.Notes)
}

func TestBuildInvoice_SumsSeveralItems(t *testing.T) {
	client, _, duration := fixture()
	items := []entity.InvoiceItem{
		SubscriptionLine(*duration),
		{Description: "Installation", Quantity: 1, UnitPrice: dec("250.50")},
		{Description: "Relais", Quantity: 4, UnitPrice: dec("12.25")},
	}

	inv := BuildInvoice(client, nil, items, day(2024, time.March, 15), day(2024, time.April, 15), "")
	assert.Equal(t, "Abonnement GPS - 12 Mois", inv.Items[0].Description)
	assertAmount(t, "49", inv.Items[2].Total)
	assertAmount(t, "1199.50", inv.TotalAmount)
}
