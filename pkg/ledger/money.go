package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyLabel is appended to displayed amounts.
const DefaultCurrencyLabel = "DH"

// FormatAmount renders d with two decimals, thousands separated by a space, and the label:
// 1234.5 -> "1 234.50 DH".
func FormatAmount(d decimal.Decimal, label string) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	out := sign + b.String() + "." + frac
	if label == "" {
		return out
	}
	return out + " " + label
}
