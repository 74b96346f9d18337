package nats

import (
	"testing"

	"gps-tracking-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "ledger.PAYMENT_RECORDED", Subject(events.PaymentRecorded))
}
