package timesheet

import (
	"math"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// Summary is the derived daily aggregate before persistence.
type Summary struct {
	FirstPunchAt    time.Time
	LastPunchAt     time.Time
	WorkedMinutes   int
	BreakMinutes    int
	ExpectedMinutes int
	BalanceMinutes  int
	Status          timesheet.Status
}

// Compute derives the daily summary from a day's punches, ordered by
// punched_at ascending, and the resolved schedule. Returns false when the
// punch list is empty (no timesheet row should exist for the day).
//
// Pairing is positional: punches are walked two at a time, and a pair
// counts as break time when its FIRST punch is a break_start, as work time
// otherwise. An unpaired trailing punch contributes to neither total. This
// mirrors the count-based classification in punch.TypeForCount.
func Compute(punches []punch.Punch, resolved schedule.Resolved) (Summary, bool) {
	if len(punches) == 0 {
		return Summary{}, false
	}

	var workedMins, breakMins float64
	for i := 0; i+1 < len(punches); i += 2 {
		diff := punches[i+1].PunchedAt.Sub(punches[i].PunchedAt).Minutes()
		if punches[i].Type == punch.TypeBreakStart {
			breakMins += diff
		} else {
			workedMins += diff
		}
	}

	expected := resolved.ExpectedMinutes()

	worked := int(math.Round(workedMins))

	return Summary{
		FirstPunchAt:    punches[0].PunchedAt,
		LastPunchAt:     punches[len(punches)-1].PunchedAt,
		WorkedMinutes:   worked,
		BreakMinutes:    int(math.Round(breakMins)),
		ExpectedMinutes: expected,
		// Balance derives from the rounded worked total, so the three
		// persisted fields always reconcile exactly.
		BalanceMinutes: worked - expected,
		Status:         statusForCount(len(punches)),
	}, true
}

// statusForCount classifies the day purely by punch count: a complete day
// has at least four punches. Coherence with the schedule is deliberately
// not part of the classification.
func statusForCount(count int) timesheet.Status {
	switch {
	case count >= 4:
		return timesheet.StatusOK
	case count >= 2:
		return timesheet.StatusReview
	default:
		return timesheet.StatusPending
	}
}
