package ledger

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

const (
	ReferencePayment = "PAY"
	ReferenceRenewal = "RENEW"
)

// NewReference returns prefix-ULID. ULIDs carry a millisecond timestamp and are
// monotonic within the process, so references sort in creation order.
func NewReference(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, ulid.Make().String())
}
