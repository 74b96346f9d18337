package ledger

import (
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDueDays is how long a client has to pay an invoice when no due date is given.
const DefaultDueDays = 30

// LineTotal is quantity * unit price.
func LineTotal(item entity.InvoiceItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// RecomputeInvoice rewrites every item total and the invoice total from the
// quantities and unit prices. Totals carried in by the caller are discarded.
func RecomputeInvoice(inv *entity.Invoice) {
	total := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Total = LineTotal(inv.Items[i])
		total = total.Add(inv.Items[i].Total)
	}
	inv.TotalAmount = total
}

// BuildInvoice assembles an unpaid invoice for the client. The number is left for
// the caller to assign from its sequence.
func BuildInvoice(
	client *entity.Client,
	sub *entity.Subscription,
	items []entity.InvoiceItem,
	date, dueDate time.Time,
	notes string,
) *entity.Invoice {
	date = Date(date)
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, DefaultDueDays)
	}

	inv := &entity.Invoice{
		Id:      uuid.New(),
		Date:    date,
		DueDate: Date(dueDate),
		Items:   append([]entity.InvoiceItem(nil), items...),
		Status:  entity.InvoiceStatusUnpaid,
		Notes:   notes,
	}
	if client != nil {
		inv.ClientId = client.Id
	}
	if sub != nil {
		id := sub.Id
		inv.SubscriptionId = &id
	}

	RecomputeInvoice(inv)
	return inv
}

// SubscriptionLine is the default invoice line for a subscription period.
func SubscriptionLine(duration entity.SubscriptionDuration) entity.InvoiceItem {
	item := entity.InvoiceItem{
		Description: "Abonnement GPS - " + duration.Name,
		Quantity:    1,
		UnitPrice:   duration.Price,
	}
	item.Total = LineTotal(item)
	return item
}
