package reminder

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/due"
)

type Plan struct {
	Date      domain.Date
	Instances []domain.ReminderInstance
	Invalid   []domain.InvalidMedicine
}

// PlanForToday expands the medicines due on now's calendar date into
// reminder instances. Slots whose fire time is not strictly after now are
// dropped; past slots are never fired retroactively.
//
// Instances are ordered by fire time, then medicine id, then slot order.
func PlanForToday(medicines []domain.Medicine, now time.Time) Plan {
	today := domain.DateOf(now)
	filtered := due.FilterDueOn(medicines, today)

	instances := make([]domain.ReminderInstance, 0)
	for _, entry := range filtered.Due {
		for _, st := range entry.Rule.EnabledSlots() {
			fireTime := today.At(st.Time, now.Location())
			if !fireTime.After(now) {
				continue
			}

			instances = append(instances, domain.ReminderInstance{
				MedicineID:   entry.Medicine.ID,
				MedicineName: entry.Medicine.Name,
				Slot:         st.Slot,
				SlotLabel:    st.Slot.Label(),
				FireTime:     fireTime,
			})
		}
	}

	sortInstances(instances)

	return Plan{
		Date:      today,
		Instances: instances,
		Invalid:   filtered.Invalid,
	}
}

func sortInstances(instances []domain.ReminderInstance) {
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if !a.FireTime.Equal(b.FireTime) {
			return a.FireTime.Before(b.FireTime)
		}
		if a.MedicineID != b.MedicineID {
			return a.MedicineID < b.MedicineID
		}
		return a.Slot.Order() < b.Slot.Order()
	})
}
