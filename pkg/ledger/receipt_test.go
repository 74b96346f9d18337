package ledger

import (
	"testing"
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceipt_SignedRemainder(t *testing.T) {
	client, sub, duration := fixture()
	payments := []*entity.Payment{
		payment(sub, "600", entity.PaymentStatusPaid),
		payment(sub, "400", entity.PaymentStatusPaid),
	}

	r := BuildReceipt(sub, client, duration, payments)
	assertAmount(t, "900", r.TotalAmount)
	assertAmount(t, "1000", r.PaidAmount)
	assertAmount(t, "-100", r.RemainingAmount)

	b := ComputeBalance(sub, duration, payments)
	assertAmount(t, "0", b.Remaining)
}

func TestBuildReceipt_RunningBalanceInDateOrder(t *testing.T) {
	client, sub, duration := fixture()
	late := payment(sub, "200", entity.PaymentStatusPaid)
	late.Date = day(2024, time.May, 1)
	early := payment(sub, "300", entity.PaymentStatusPaid)
	early.Date = day(2024, time.February, 1)

	r := BuildReceipt(sub, client, duration, []*entity.Payment{late, early})
	require.Len(t, r.Lines, 2)
	assert.Same(t, early, r.Lines[0].Payment)
	assertAmount(t, "600", r.Lines[0].Balance)
	assertAmount(t, "400", r.Lines[1].Balance)
	assertAmount(t, "400", r.RemainingAmount)
}

func TestBuildReceipt_NoDuration(t *testing.T) {
	client, sub, _ := fixture()
	r := BuildReceipt(sub, client, nil, []*entity.Payment{payment(sub, "50", entity.PaymentStatusPaid)})

	assertAmount(t, "0", r.TotalAmount)
	assertAmount(t, "-50", r.RemainingAmount)
}
