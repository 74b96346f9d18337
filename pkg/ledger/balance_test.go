package ledger

import (
	"testing"
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fixture() (*entity.Client, *entity.Subscription, *entity.SubscriptionDuration) {
	client := &entity.Client{Id: uuid.New(), Name: "Karim", Status: entity.ClientStatusActive}
	duration := &entity.SubscriptionDuration{Id: uuid.New(), Name: "12 Mois", Months: 12, Price: dec("900")}
	sub := &entity.Subscription{
		Id:         uuid.New(),
		ClientId:   client.Id,
		DurationId: duration.Id,
		StartDate:  day(2024, time.January, 15),
		Status:     entity.SubscriptionStatusActive,
	}
	return client, sub, duration
}

func TestComputeBalance(t *testing.T) {
	_, sub, duration := fixture()
	other := &entity.Subscription{Id: uuid.New(), ClientId: sub.ClientId}

	tests := []struct {
		name      string
		payments  []*entity.Payment
		wantPaid  string
		wantLeft  string
		wantState entity.SubscriptionPaymentStatus
	}{
		{
			name:      "no payments",
			wantPaid:  "0",
			wantLeft:  "900",
			wantState: entity.SubscriptionPaymentUnpaid,
		},
		{
			name: "only paid payments count",
			payments: []*entity.Payment{
				payment(sub, "300", entity.PaymentStatusPaid),
				payment(sub, "250", entity.PaymentStatusPending),
				payment(sub, "100", entity.PaymentStatusCancelled),
			},
			wantPaid:  "300",
			wantLeft:  "600",
			wantState: entity.SubscriptionPaymentPartial,
		},
		{
			name: "payments of other subscriptions are ignored",
			payments: []*entity.Payment{
				payment(other, "900", entity.PaymentStatusPaid),
				payment(sub, "100", entity.PaymentStatusPaid),
			},
			wantPaid:  "100",
			wantLeft:  "800",
			wantState: entity.SubscriptionPaymentPartial,
		},
		{
			name: "overpayment clamps remaining to zero",
			payments: []*entity.Payment{
				payment(sub, "600", entity.PaymentStatusPaid),
				payment(sub, "400", entity.PaymentStatusPaid),
			},
			wantPaid:  "1000",
			wantLeft:  "0",
			wantState: entity.SubscriptionPaymentPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBalance(sub, duration, tt.payments)
			assertAmount(t, "900", b.TotalDue)
			assertAmount(t, tt.wantPaid, b.TotalPaid)
			assertAmount(t, tt.wantLeft, b.Remaining)
			assert.GreaterOrEqual(t, b.Remaining.Sign(), 0)
			assert.Equal(t, tt.wantState, PaymentStatusFor(b))
		})
	}
}

func TestComputeBalance_MissingDuration(t *testing.T) {
	_, sub, _ := fixture()
	b := ComputeBalance(sub, nil, []*entity.Payment{payment(sub, "50", entity.PaymentStatusPaid)})

	assertAmount(t, "0", b.TotalDue)
	assertAmount(t, "50", b.TotalPaid)
	assertAmount(t, "0", b.Remaining)
}

func TestComputeBalance_Idempotent(t *testing.T) {
	_, sub, duration := fixture()
	payments := []*entity.Payment{
		payment(sub, "300", entity.PaymentStatusPaid),
		payment(sub, "400", entity.PaymentStatusPaid),
	}

	first := ComputeBalance(sub, duration, payments)
	second := ComputeBalance(sub, duration, payments)

	assert.True(t, first.TotalDue.Equal(second.TotalDue))
	assert.True(t, first.TotalPaid.Equal(second.TotalPaid))
	assert.True(t, first.Remaining.Equal(second.Remaining))
	assert.Len(t, payments, 2)
}

func TestComputeBalance_PartialThenPaid(t *testing.T) {
	_, sub, duration := fixture()
	payments := []*entity.Payment{
		payment(sub, "300", entity.PaymentStatusPaid),
		payment(sub, "400", entity.PaymentStatusPaid),
	}

	b := ComputeBalance(sub, duration, payments)
	assertAmount(t, "700", b.TotalPaid)
	assertAmount(t, "200", b.Remaining)
	assert.Equal(t, entity.SubscriptionPaymentPartial, PaymentStatusFor(b))

	payments = append(payments, payment(sub, "200", entity.PaymentStatusPaid))
	b = ComputeBalance(sub, duration, payments)
	assertAmount(t, "0", b.Remaining)
	assert.Equal(t, entity.SubscriptionPaymentPaid, PaymentStatusFor(b))

	Apply(sub, b)
	assert.Equal(t, entity.SubscriptionPaymentPaid, sub.PaymentStatus)
	assertAmount(t, "0", sub.RemainingAmount)
}

func TestComputeClientBalance(t *testing.T) {
	client, first, yearly := fixture()
	quarterly := &entity.SubscriptionDuration{Id: uuid.New(), Name: "3 Mois", Months: 3, Price: dec("300")}
	second := &entity.Subscription{Id: uuid.New(), ClientId: client.Id, DurationId: quarterly.Id}
	foreign := &entity.Subscription{Id: uuid.New(), ClientId: uuid.New(), DurationId: yearly.Id}
	orphan := &entity.Payment{Id: uuid.New(), ClientId: client.Id, Amount: dec("999"), Status: entity.PaymentStatusPaid}

	payments := []*entity.Payment{
		payment(first, "500", entity.PaymentStatusPaid),
		payment(second, "300", entity.PaymentStatusPaid),
		payment(second, "100", entity.PaymentStatusPending),
		payment(foreign, "900", entity.PaymentStatusPaid),
		orphan,
	}

	b := ComputeClientBalance(
		client,
		[]*entity.Subscription{first, second, foreign},
		[]*entity.SubscriptionDuration{yearly, quarterly},
		payments,
	)

	assertAmount(t, "1200", b.TotalDue)
	assertAmount(t, "800", b.TotalPaid)
	assertAmount(t, "400", b.Overdue)
}

func TestComputeClientBalance_UnknownDurationCountsAsZero(t *testing.T) {
	client, sub, _ := fixture()
	b := ComputeClientBalance(client, []*entity.Subscription{sub}, nil, []*entity.Payment{
		payment(sub, "100", entity.PaymentStatusPaid),
	})

	assertAmount(t, "0", b.TotalDue)
	assertAmount(t, "100", b.TotalPaid)
	assertAmount(t, "0", b.Overdue)
}
