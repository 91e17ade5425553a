package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=domain

const reminderTitlePrefix = "💊 Time to take your medication: "

// Trigger describes a weekly repeating local notification.
type Trigger struct {
	UserID     string  `json:"user_id"`
	MedicineID string  `json:"medicine_id"`
	Slot       Slot    `json:"slot"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Hour       int     `json:"hour"`
	Minute     int     `json:"minute"`
	Weekday    Weekday `json:"weekday"`
	Repeats    bool    `json:"repeats"`

	// FirstFireTime is the first occurrence; backends that cannot express
	// a recurrence natively schedule this instant.
	FirstFireTime time.Time `json:"first_fire_time"`
}

// TriggerFor builds the repeating trigger for a planned reminder.
func TriggerFor(userID string, inst ReminderInstance) Trigger {
	return Trigger{
		UserID:        userID,
		MedicineID:    inst.MedicineID,
		Slot:          inst.Slot,
		Title:         reminderTitlePrefix + inst.MedicineName,
		Body:          inst.SlotLabel,
		Hour:          inst.FireTime.Hour(),
		Minute:        inst.FireTime.Minute(),
		Weekday:       WeekdayOf(inst.FireTime),
		Repeats:       true,
		FirstFireTime: inst.FireTime,
	}
}

// NextOccurrence returns the first instant strictly after `after` that
// matches the trigger's weekday and clock time in after's location.
func (t Trigger) NextOccurrence(after time.Time) time.Time {
	day := DateOf(after)
	for i := 0; i <= 7; i++ {
		d := day.AddDays(i)
		if d.Weekday() != t.Weekday {
			continue
		}
		at := d.At(ClockTime{Hour: t.Hour, Minute: t.Minute}, after.Location())
		if at.After(after) {
			return at
		}
	}
	return day.AddDays(7).At(ClockTime{Hour: t.Hour, Minute: t.Minute}, after.Location())
}

type Notifier interface {
	ScheduleRecurring(ctx context.Context, trigger Trigger) (string, error)
	CancelAll(ctx context.Context, ids []string) error
}

// CancelError reports the notification ids a CancelAll call could not remove.
type CancelError struct {
	FailedIDs []string
	Err       error
}

func (e *CancelError) Error() string {
	return fmt.Sprintf("failed to cancel %d notifications: %v", len(e.FailedIDs), e.Err)
}

func (e *CancelError) Unwrap() error {
	return e.Err
}

// UncancelledIDs returns the ids that remain registered after a failed
// CancelAll. Without a CancelError every requested id is assumed to remain.
func UncancelledIDs(err error, requested []string) []string {
	if err == nil {
		return nil
	}
	var cancelErr *CancelError
	if errors.As(err, &cancelErr) {
		return cancelErr.FailedIDs
	}
	return append([]string(nil), requested...)
}
