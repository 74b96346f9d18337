package ledger

import (
	"sort"

	"gps-tracking-be/internal/entity"

	"github.com/shopspring/decimal"
)

// ReceiptLine is one payment on a receipt with the balance left after it.
type ReceiptLine struct {
	Payment *entity.Payment
	Balance decimal.Decimal
}

// Receipt is the printable payment history of a subscription.
//
// Unlike Balance.Remaining, RemainingAmount is signed: an overpaid subscription
// shows a negative remainder.
type Receipt struct {
	Subscription    *entity.Subscription
	Client          *entity.Client
	Duration        entity.SubscriptionDuration
	Lines           []ReceiptLine
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
}

// BuildReceipt sums every payment it is given; callers choose which payments
// belong on the receipt.
func BuildReceipt(
	sub *entity.Subscription,
	client *entity.Client,
	duration *entity.SubscriptionDuration,
	payments []*entity.Payment,
) *Receipt {
	r := &Receipt{
		Subscription: sub,
		Client:       client,
		TotalAmount:  decimal.Zero,
	}
	if duration != nil {
		r.Duration = *duration
		r.TotalAmount = duration.Price
	}

	ordered := make([]*entity.Payment, 0, len(payments))
	for _, p := range payments {
		if p != nil {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	running := r.TotalAmount
	for _, p := range ordered {
		running = running.Sub(p.Amount)
		r.Lines = append(r.Lines, ReceiptLine{Payment: p, Balance: running})
	}

	r.PaidAmount = sumAmounts(ordered)
	r.RemainingAmount = r.TotalAmount.Sub(r.PaidAmount)
	return r
}
