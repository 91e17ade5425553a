package due

import (
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// Entry is a medicine that is due together with its parsed rule.
type Entry struct {
	Medicine domain.Medicine
	Rule     domain.RecurrenceRule
}

type Result struct {
	Due     []Entry
	Invalid []domain.InvalidMedicine
}

// Medicines returns the due medicines without their rules.
func (r Result) Medicines() []domain.Medicine {
	out := make([]domain.Medicine, 0, len(r.Due))
	for _, e := range r.Due {
		out = append(out, e.Medicine)
	}
	return out
}

// FilterDueToday keeps the medicines whose course includes today and whose
// weekday mask enables it. today is reduced to its calendar date in its own
// location first. Medicines with unparseable dates are reported in Invalid
// and never returned as due.
func FilterDueToday(medicines []domain.Medicine, today time.Time) Result {
	return FilterDueOn(medicines, domain.DateOf(today))
}

func FilterDueOn(medicines []domain.Medicine, date domain.Date) Result {
	result := Result{
		Due:     make([]Entry, 0, len(medicines)),
		Invalid: make([]domain.InvalidMedicine, 0),
	}

	for _, med := range medicines {
		rule, err := domain.NewRecurrenceRule(med)
		if err != nil {
			result.Invalid = append(result.Invalid, domain.InvalidMedicine{
				MedicineID: med.ID,
				Name:       med.Name,
				Reason:     err.Error(),
			})
			continue
		}

		if rule.IsActiveOn(date) {
			result.Due = append(result.Due, Entry{Medicine: med, Rule: rule})
		}
	}

	return result
}
