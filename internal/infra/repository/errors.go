package repository

import "errors"

var (
	ErrRedisConnection       = errors.New("redis connection error")
	ErrInvalidScheduleState  = errors.New("invalid schedule state")
	ErrInvalidScheduleRecord = errors.New("invalid schedule state record")
)
