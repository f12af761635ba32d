package schedule

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// UpsertScheduleRequest creates or replaces a schedule definition for an
// employee or a sector.
type UpsertScheduleRequest struct {
	EmployeeID             *string `json:"employee_id,omitempty"`
	SectorID               *string `json:"sector_id,omitempty"`
	ScheduleType           string  `json:"schedule_type"`
	ExpectedStart          *string `json:"expected_start,omitempty"`
	ExpectedEnd            *string `json:"expected_end,omitempty"`
	BreakMinutes           *int    `json:"break_minutes,omitempty"`
	BreakRequired          bool    `json:"break_required"`
	ToleranceEarlyMinutes  int     `json:"tolerance_early_minutes"`
	ToleranceLateMinutes   int     `json:"tolerance_late_minutes"`
	MinExtraMinutesToCount int     `json:"min_extra_minutes_to_count"`
	WeeklyDays             []int   `json:"weekly_days"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	hasEmployee := r.EmployeeID != nil && !validator.IsEmpty(*r.EmployeeID)
	hasSector := r.SectorID != nil && !validator.IsEmpty(*r.SectorID)
	if hasEmployee == hasSector {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "exactly one of employee_id or sector_id is required",
		})
	}

	switch ScheduleType(r.ScheduleType) {
	case ScheduleTypeFixed, ScheduleTypeFlexible, ScheduleTypeShift:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_type",
			Message: "schedule_type must be one of: fixed, flexible, shift",
		})
	}

	if r.ExpectedStart != nil && !validator.IsValidTimeOfDay(*r.ExpectedStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_start",
			Message: "expected_start must be in HH:MM format",
		})
	}

	if r.ExpectedEnd != nil && !validator.IsValidTimeOfDay(*r.ExpectedEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_end",
			Message: "expected_end must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	for _, d := range r.WeeklyDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_days",
				Message: "weekly_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             *string `json:"employee_id,omitempty"`
	SectorID               *string `json:"sector_id,omitempty"`
	ScheduleType           string  `json:"schedule_type"`
	ExpectedStart          *string `json:"expected_start,omitempty"`
	ExpectedEnd            *string `json:"expected_end,omitempty"`
	BreakMinutes           *int    `json:"break_minutes,omitempty"`
	BreakRequired          bool    `json:"break_required"`
	ToleranceEarlyMinutes  int     `json:"tolerance_early_minutes"`
	ToleranceLateMinutes   int     `json:"tolerance_late_minutes"`
	MinExtraMinutesToCount int     `json:"min_extra_minutes_to_count"`
	WeeklyDays             []int   `json:"weekly_days"`
}
