package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "FACT-2024-0007", InvoiceNumber("FACT", 2024, 7))
	assert.Equal(t, "FACT-2024-12345", InvoiceNumber("FACT", 2024, 12345))
	assert.Equal(t, "INV-2025-", InvoiceYearPrefix("INV", 2025))
}

func TestInvoiceSequence(t *testing.T) {
	n, ok := InvoiceSequence("FACT-2024-0042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"", "FACT", "FACT-2024-", "FACT-2024-abc"} {
		_, ok := InvoiceSequence(bad)
		assert.False(t, ok, bad)
	}
}
