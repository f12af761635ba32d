package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrScheduleConflict = errors.New("a schedule already exists for this employee or sector")
)
