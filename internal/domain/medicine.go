package domain

// Medicine is one prescribed course as stored. Dates and slot times are kept
// as the raw strings of the row; RecurrenceRule parses them.
type Medicine struct {
	ID         string
	UserID     string
	Name       string
	StartDate  string
	EndDate    string
	ActiveDays WeekdayMask
	// TimeSlots maps a slot to "HH:MM". Missing or empty means not scheduled.
	TimeSlots map[Slot]string
}

// SlotTime pairs an enabled slot with its clock time.
type SlotTime struct {
	Slot Slot
	Time ClockTime
}
