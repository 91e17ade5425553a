package domain

import "time"

// Weekday is the recurrence index used across the engine. Sunday is 0 and
// Saturday is 6, the same numbering as time.Weekday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return weekdayNames[w]
}

// WeekdayMask marks which weekdays a course is taken on.
type WeekdayMask [7]bool

// EveryDay returns a mask with all seven days enabled.
func EveryDay() WeekdayMask {
	return WeekdayMask{true, true, true, true, true, true, true}
}

func NewWeekdayMask(days ...Weekday) WeekdayMask {
	var m WeekdayMask
	for _, d := range days {
		if d.Valid() {
			m[d] = true
		}
	}
	return m
}

func (m WeekdayMask) Has(w Weekday) bool {
	if !w.Valid() {
		return false
	}
	return m[w]
}

func (m WeekdayMask) IsEmpty() bool {
	for _, on := range m {
		if on {
			return false
		}
	}
	return true
}

func (m WeekdayMask) Days() []Weekday {
	days := make([]Weekday, 0, len(m))
	for i, on := range m {
		if on {
			days = append(days, Weekday(i))
		}
	}
	return days
}
