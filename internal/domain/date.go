package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Date is a calendar date without time of day or zone. The zero value is
// not a valid date.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf strips the time of day from t, keeping the calendar date as seen in
// t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Weekday() Weekday {
	return WeekdayOf(d.t)
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths overflows into the following month the same way time.AddDate
// does (January 31 plus one month is March 2 or 3).
func (d Date) AddMonths(n int) Date {
	return Date{t: d.t.AddDate(0, n, 0)}
}

// DaysUntil returns the number of whole days from d to o; negative when o is
// earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / day)
}

// At combines the date with a clock time in loc.
func (d Date) At(c ClockTime, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, dd := d.t.Date()
	return time.Date(y, m, dd, c.Hour, c.Minute, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}
