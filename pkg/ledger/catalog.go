// Package ledger holds the subscription ledger rules: duration lookup, balances,
// billing periods, invoice totals and receipts. Nothing in here touches storage.
package ledger

import (
	"gps-tracking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FindDuration looks a duration up in the catalog.
func FindDuration(durations []*entity.SubscriptionDuration, id uuid.UUID) (*entity.SubscriptionDuration, bool) {
	return lo.Find(durations, func(d *entity.SubscriptionDuration) bool {
		return d != nil && d.Id == id
	})
}

// DurationOrZero returns the duration with the given id, or a zero-priced,
// zero-month placeholder when the catalog has no such entry.
func DurationOrZero(durations []*entity.SubscriptionDuration, id uuid.UUID) entity.SubscriptionDuration {
	if d, ok := FindDuration(durations, id); ok {
		return *d
	}
	return entity.SubscriptionDuration{Id: id, Name: "N/A", Price: decimal.Zero}
}
