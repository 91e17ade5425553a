package domain

import "time"

// ScheduleState is what the scheduler remembers about the notifications it
// registered for a user, so the next pass can cancel them.
type ScheduleState struct {
	UserID          string
	Fingerprint     uint64
	PlanDate        string
	NotificationIDs []string
	ScheduledAt     time.Time
}

func (s *ScheduleState) HasNotifications() bool {
	return s != nil && len(s.NotificationIDs) > 0
}
