package ledger

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"same day of month", day(2024, time.March, 15), 3, day(2024, time.June, 15)},
		{"clamped to leap february", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"clamped to february", day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{"clamped to 30 day month", day(2024, time.March, 31), 1, day(2024, time.April, 30)},
		{"crosses year", day(2024, time.November, 30), 3, day(2025, time.February, 28)},
		{"twelve months", day(2024, time.February, 29), 12, day(2025, time.February, 28)},
		{"zero months", day(2024, time.May, 5), 0, day(2024, time.May, 5)},
		{"negative months", day(2024, time.January, 31), -2, day(2023, time.November, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%s, %d) = %s, want %s",
					tt.start.Format(time.DateOnly), tt.months, got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestPeriodEnd_TruncatesTime(t *testing.T) {
	start := time.Date(2024, time.January, 31, 17, 45, 0, 0, time.UTC)
	got := PeriodEnd(start, 1)
	want := day(2024, time.February, 29)
	if !got.Equal(want) {
		t.Errorf("PeriodEnd = %s, want %s", got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil || !got.Equal(day(2024, time.February, 29)) {
		t.Fatalf("ParseDate date-only = %s, %v", got, err)
	}

	got, err = ParseDate("2024-02-29T23:10:00Z")
	if err != nil || !got.Equal(day(2024, time.February, 29)) {
		t.Fatalf("ParseDate rfc3339 = %s, %v", got, err)
	}

	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}
