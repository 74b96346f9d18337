package ledger

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in    string
		label string
		want  string
	}{
		{"0", "DH", "0.00 DH"},
		{"900", "DH", "900.00 DH"},
		{"1234.5", "DH", "1 234.50 DH"},
		{"1234567.891", "DH", "1 234 567.89 DH"},
		{"-100", "DH", "-100.00 DH"},
		{"-1500", "", "-1 500.00"},
	}

	for _, tt := range tests {
		if got := FormatAmount(dec(tt.in), tt.label); got != tt.want {
			t.Errorf("FormatAmount(%s, %q) = %q, want %q", tt.in, tt.label, got, tt.want)
		}
	}
}
