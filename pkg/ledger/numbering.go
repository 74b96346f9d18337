package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultInvoicePrefix starts every invoice number.
const DefaultInvoicePrefix = "FACT"

// InvoiceYearPrefix is the part shared by every invoice number of a year: "FACT-2024-".
func InvoiceYearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// InvoiceNumber renders a sequence value as "FACT-2024-0007".
func InvoiceNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%04d", InvoiceYearPrefix(prefix, year), seq)
}

// InvoiceSequence extracts the trailing sequence value of an invoice number.
func InvoiceSequence(number string) (int, bool) {
	i := strings.LastIndex(number, "-")
	if i < 0 || i == len(number)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(number[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
