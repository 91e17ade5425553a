package domain

import "fmt"

// RecurrenceRule is the parsed schedule of a Medicine.
type RecurrenceRule struct {
	start Date
	end   Date
	days  WeekdayMask
	slots []SlotTime
}

// NewRecurrenceRule parses the dates and slot times of m. Slot strings that
// are not valid "HH:MM" values are dropped; bad dates are an error.
func NewRecurrenceRule(m Medicine) (RecurrenceRule, error) {
	start, err := ParseDate(m.StartDate)
	if err != nil {
		return RecurrenceRule{}, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(m.EndDate)
	if err != nil {
		return RecurrenceRule{}, fmt.Errorf("end date: %w", err)
	}
	if start.After(end) {
		return RecurrenceRule{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}

	slots := make([]SlotTime, 0, len(AllSlots))
	for _, slot := range AllSlots {
		raw, ok := m.TimeSlots[slot]
		if !ok || raw == "" {
			continue
		}
		t, err := ParseClockTime(raw)
		if err != nil {
			continue
		}
		slots = append(slots, SlotTime{Slot: slot, Time: t})
	}

	return RecurrenceRule{
		start: start,
		end:   end,
		days:  m.ActiveDays,
		slots: slots,
	}, nil
}

// IsActiveOn reports whether d is inside [start, end] and on an enabled weekday.
func (r RecurrenceRule) IsActiveOn(d Date) bool {
	if d.Before(r.start) || d.After(r.end) {
		return false
	}
	return r.days.Has(d.Weekday())
}

// EnabledSlots returns the scheduled slots in canonical order.
func (r RecurrenceRule) EnabledSlots() []SlotTime {
	out := make([]SlotTime, len(r.slots))
	copy(out, r.slots)
	return out
}

func (r RecurrenceRule) Start() Date {
	return r.start
}

func (r RecurrenceRule) End() Date {
	return r.end
}

func (r RecurrenceRule) Days() WeekdayMask {
	return r.days
}
