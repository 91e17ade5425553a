package domain

import (
	"fmt"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockTime is a 24-hour wall clock time with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime accepts exactly "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, ok := twoDigits(s[0], s[1])
	if !ok || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, ok := twoDigits(s[3], s[4])
	if !ok || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// AddMinutes wraps around midnight in both directions.
func (c ClockTime) AddMinutes(n int) ClockTime {
	total := ((c.Hour*60+c.Minute+n)%minutesPerDay + minutesPerDay) % minutesPerDay
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
