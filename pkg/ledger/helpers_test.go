package ledger

import (
	"testing"
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func payment(sub *entity.Subscription, amount string, status entity.PaymentStatus) *entity.Payment {
	p := &entity.Payment{
		Id:       uuid.New(),
		Date:     day(2024, time.March, 1),
		Amount:   dec(amount),
		ClientId: sub.ClientId,
		Status:   status,
	}
	id := sub.Id
	p.SubscriptionId = &id
	return p
}
