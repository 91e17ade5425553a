package domain

import "errors"

var (
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidDateRange      = errors.New("start date is after end date")
	ErrInvalidClockTime      = errors.New("invalid clock time")
	ErrInvalidSlot           = errors.New("invalid time slot")
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrScheduleStateNotFound = errors.New("schedule state not found")
)
