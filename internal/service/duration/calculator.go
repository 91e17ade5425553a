package duration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

var (
	ErrInvalidUnit  = errors.New("invalid duration unit")
	ErrInvalidValue = errors.New("invalid duration value")
)

const CourseOverText = "course over"

// Unit of a prescribed course length.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "days":
		return UnitDays, nil
	case "week", "weeks":
		return UnitWeeks, nil
	case "month", "months":
		return UnitMonths, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}

type Duration struct {
	Value int
	Unit  Unit
}

// EndDate adds the duration to start. Months are calendar months.
func EndDate(start domain.Date, d Duration) (domain.Date, error) {
	if d.Value <= 0 {
		return domain.Date{}, fmt.Errorf("%w: %d", ErrInvalidValue, d.Value)
	}

	switch d.Unit {
	case UnitDays:
		return start.AddDays(d.Value), nil
	case UnitWeeks:
		return start.AddDays(d.Value * 7), nil
	case UnitMonths:
		return start.AddMonths(d.Value), nil
	default:
		return domain.Date{}, fmt.Errorf("%w: %q", ErrInvalidUnit, d.Unit)
	}
}

// CourseLength is the number of whole days from start to end. The end date is
// not counted, so 2024-01-01..2024-01-10 is 9 days.
func CourseLength(start, end domain.Date) int {
	return start.DaysUntil(end)
}

// Remaining describes how much of a course is left.
type Remaining struct {
	Over bool
	Days int
}

// DaysRemaining compares dates only. A course ending today has 0 days left
// and is not over yet.
func DaysRemaining(end, today domain.Date) Remaining {
	if today.After(end) {
		return Remaining{Over: true}
	}
	return Remaining{Days: today.DaysUntil(end)}
}

func (r Remaining) String() string {
	switch {
	case r.Over:
		return CourseOverText
	case r.Days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", r.Days)
	}
}

// Status is the course summary shown next to a medicine.
type Status struct {
	CourseLengthDays int    `json:"course_length_days"`
	Remaining        string `json:"remaining"`
	Over             bool   `json:"over"`
}

// StatusOf parses the medicine's dates and summarises its course.
func StatusOf(m domain.Medicine, today domain.Date) (Status, error) {
	start, err := domain.ParseDate(m.StartDate)
	if err != nil {
		return Status{}, err
	}
	end, err := domain.ParseDate(m.EndDate)
	if err != nil {
		return Status{}, err
	}

	remaining := DaysRemaining(end, today)
	return Status{
		CourseLengthDays: CourseLength(start, end),
		Remaining:        remaining.String(),
		Over:             remaining.Over,
	}, nil
}
