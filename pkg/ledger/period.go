package ledger

import "time"

// Date truncates t to a calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds calendar months keeping the day of month. When the target month
// is shorter, the result is clamped to its last day (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	total := int(m) - 1 + months
	newY := y + total/12
	newM := total % 12
	if newM < 0 {
		newM += 12
		newY--
	}
	month := time.Month(newM + 1)

	lastDay := time.Date(newY, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(newY, month, d, h, min, sec, t.Nanosecond(), t.Location())
}

// PeriodEnd is the end date of a subscription starting on start for the given number of months.
func PeriodEnd(start time.Time, months int) time.Time {
	return AddMonths(Date(start), months)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate accepts "2006-01-02" or RFC 3339 and returns the calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}
