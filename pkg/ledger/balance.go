package ledger

import (
	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Balance is the settlement state of one subscription.
type Balance struct {
	TotalDue  decimal.Decimal
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
}

// ClientBalance aggregates Balance over every subscription a client owns.
type ClientBalance struct {
	TotalDue  decimal.Decimal
	TotalPaid decimal.Decimal
	Overdue   decimal.Decimal
}

// counts reports whether a payment settles part of the given subscription.
func counts(p *entity.Payment, subscriptionId uuid.UUID) bool {
	return p != nil &&
		p.Status == entity.PaymentStatusPaid &&
		p.SubscriptionId != nil &&
		*p.SubscriptionId == subscriptionId
}

func sumAmounts(payments []*entity.Payment) decimal.Decimal {
	return lo.Reduce(payments, func(acc decimal.Decimal, p *entity.Payment, _ int) decimal.Decimal {
		return acc.Add(p.Amount)
	}, decimal.Zero)
}

// PaidPayments keeps the paid payments linked to the subscription.
func PaidPayments(sub *entity.Subscription, payments []*entity.Payment) []*entity.Payment {
	if sub == nil {
		return []*entity.Payment{}
	}
	return lo.Filter(payments, func(p *entity.Payment, _ int) bool {
		return counts(p, sub.Id)
	})
}

// ComputeBalance derives what is due, paid and left on a subscription. A nil
// duration counts as a zero price. Remaining is never negative.
func ComputeBalance(sub *entity.Subscription, duration *entity.SubscriptionDuration, payments []*entity.Payment) Balance {
	due := decimal.Zero
	if duration != nil {
		due = duration.Price
	}
	paid := sumAmounts(PaidPayments(sub, payments))

	return Balance{
		TotalDue:  due,
		TotalPaid: paid,
		Remaining: decimal.Max(decimal.Zero, due.Sub(paid)),
	}
}

// ComputeClientBalance sums the balances of the client's subscriptions. Payments
// only count when they are paid and linked to one of those subscriptions.
func ComputeClientBalance(
	client *entity.Client,
	subscriptions []*entity.Subscription,
	durations []*entity.SubscriptionDuration,
	payments []*entity.Payment,
) ClientBalance {
	result := ClientBalance{TotalDue: decimal.Zero, TotalPaid: decimal.Zero, Overdue: decimal.Zero}
	if client == nil {
		return result
	}

	owned := lo.Filter(subscriptions, func(s *entity.Subscription, _ int) bool {
		return s != nil && s.ClientId == client.Id
	})
	for _, s := range owned {
		d := DurationOrZero(durations, s.DurationId)
		b := ComputeBalance(s, &d, payments)
		result.TotalDue = result.TotalDue.Add(b.TotalDue)
		result.TotalPaid = result.TotalPaid.Add(b.TotalPaid)
	}
	result.Overdue = decimal.Max(decimal.Zero, result.TotalDue.Sub(result.TotalPaid))
	return result
}

// PaymentStatusFor maps a balance to the subscription payment status.
func PaymentStatusFor(b Balance) entity.SubscriptionPaymentStatus {
	switch {
	case b.Remaining.Sign() <= 0:
		return entity.SubscriptionPaymentPaid
	case b.TotalPaid.Sign() <= 0:
		return entity.SubscriptionPaymentUnpaid
	default:
		return entity.SubscriptionPaymentPartial
	}
}

// Apply copies the balance onto the subscription's denormalized fields.
func Apply(sub *entity.Subscription, b Balance) {
	sub.RemainingAmount = b.Remaining
	sub.PaymentStatus = PaymentStatusFor(b)
}
