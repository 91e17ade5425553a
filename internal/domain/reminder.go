package domain

import (
	"fmt"
	"time"
)

// ReminderInstance is one dose reminder planned for a specific day.
type ReminderInstance struct {
	MedicineID   string    `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	Slot         Slot      `json:"slot"`
	SlotLabel    string    `json:"slot_label"`
	FireTime     time.Time `json:"fire_time"`
}

// Key identifies the instance independent of the medicine name.
func (r ReminderInstance) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.MedicineID, r.Slot, r.FireTime.Format(time.RFC3339))
}

// InvalidMedicine is a medicine excluded from planning because its row could
// not be parsed.
type InvalidMedicine struct {
	MedicineID string `json:"medicine_id"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}
