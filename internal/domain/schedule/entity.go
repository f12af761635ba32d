package schedule

import (
	"time"
)

// WorkSchedule is an expected-work-schedule definition. Exactly one of
// EmployeeID (individual override) or SectorID (sector default) is set.
// Times are stored as "HH:MM" strings; ExpectedEnd is treated as the same
// day as ExpectedStart (no overnight shifts).
type WorkSchedule struct {
	ID                     string
	EmployeeID             *string
	SectorID               *string
	ScheduleType           ScheduleType
	ExpectedStart          *string
	ExpectedEnd            *string
	BreakMinutes           *int
	BreakRequired          bool
	ToleranceEarlyMinutes  int
	ToleranceLateMinutes   int
	MinExtraMinutesToCount int
	WeeklyDays             []int // 0=Sunday .. 6=Saturday
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "fixed"
	ScheduleTypeFlexible ScheduleType = "flexible"
	ScheduleTypeShift    ScheduleType = "shift"
)

// Source names which layer of the resolution chain produced a schedule.
type Source string

const (
	SourceIndividual Source = "individual"
	SourceSector     Source = "sector"
	SourceDefault    Source = "default"
)

const (
	// DefaultExpectedMinutes is the organization fallback: 8 hours minus a
	// 60-minute break.
	DefaultExpectedMinutes = 420

	// DefaultBreakMinutes applies when a schedule has no configured break.
	DefaultBreakMinutes = 60
)

// Resolved is the outcome of schedule resolution for one employee.
// Schedule is nil when the organization default applies.
type Resolved struct {
	Schedule *WorkSchedule
	Source   Source
}

// ExpectedMinutes derives the expected work minutes for a day. Both start
// and end must be set for the schedule to count; otherwise the hard default
// applies. Tolerance and weekly-day fields are carried on the schedule but
// intentionally not consulted here.
func (r Resolved) ExpectedMinutes() int {
	s := r.Schedule
	if s == nil || s.ExpectedStart == nil || s.ExpectedEnd == nil {
		return DefaultExpectedMinutes
	}

	start, okStart := minutesOfDay(*s.ExpectedStart)
	end, okEnd := minutesOfDay(*s.ExpectedEnd)
	if !okStart || !okEnd {
		return DefaultExpectedMinutes
	}

	breakMins := DefaultBreakMinutes
	if s.BreakMinutes != nil {
		breakMins = *s.BreakMinutes
	}

	return end - start - breakMins
}

// minutesOfDay parses "HH:MM" (seconds tolerated and ignored) into minutes
// since midnight.
func minutesOfDay(s string) (int, bool) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, false
		}
	}
	return t.Hour()*60 + t.Minute(), true
}
