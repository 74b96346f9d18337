package mapper

import (
	"testing"
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceMapper_ItemsSurviveJSONColumn(t *testing.T) {
	m := NewInvoiceMapper()
	inv := &entity.Invoice{
		Id:       uuid.New(),
		Number:   "FACT-2024-0001",
		ClientId: uuid.New(),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		DueDate:  time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Description: "Abonnement GPS - 3 Mois", Quantity: 1, UnitPrice: decimal.NewFromInt(300), Total: decimal.NewFromInt(300)},
			{Description: "Installation", Quantity: 2, UnitPrice: decimal.RequireFromString("75.50"), Total: decimal.RequireFromString("151")},
		},
		TotalAmount: decimal.RequireFromString("451"),
		Status:      entity.InvoiceStatusUnpaid,
	}

	row, err := m.ToModel(inv)
	require.NoError(t, err)
	assert.Contains(t, string(row.Items), `"unit_price":"75.5"`)

	back, err := m.ToEntity(row)
	require.NoError(t, err)
	require.Len(t, back.Items, 2)
	assert.Equal(t, "Installation", back.Items[1].Description)
	assert.True(t, back.Items[1].UnitPrice.Equal(decimal.RequireFromString("75.50")))
	assert.Nil(t, back.SubscriptionId)
}

func TestInvoiceMapper_BadItems(t *testing.T) {
	m := NewInvoiceMapper()
	inv := &entity.Invoice{Number: "FACT-X"}
	row, err := m.ToModel(inv)
	require.NoError(t, err)

	row.Items = []byte("{broken")
	_, err = m.ToEntity(row)
	assert.Error(t, err)
}
