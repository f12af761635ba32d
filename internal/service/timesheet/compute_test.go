package timesheet

import (
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punchAt(t *testing.T, hhmm string, pType punch.Type) punch.Punch {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", "2026-03-02 "+hhmm)
	if err != nil {
		ts, err = time.Parse("2006-01-02 15:04", "2026-03-02 "+hhmm)
	}
	require.NoError(t, err)
	return punch.Punch{Type: pType, PunchedAt: ts}
}

func defaultSchedule() schedule.Resolved {
	return schedule.Resolved{Source: schedule.SourceDefault}
}

func TestComputeEmptyDay(t *testing.T) {
	_, ok := Compute(nil, defaultSchedule())
	assert.False(t, ok)
}

func TestComputeStandardFourPunchDay(t *testing.T) {
	// The worked/break split keys off the FIRST punch of each positional
	// pair. Pair one is (entry 09:00, break_start 12:00): entry is not a
	// break_start, so those 180 minutes count as work. Pair two is
	// (break_end 13:00, exit 18:00): 300 more minutes of work. The actual
	// lunch hour lands inside neither pair, so break stays zero.
	punches := []punch.Punch{
		punchAt(t, "09:00", punch.TypeEntry),
		punchAt(t, "12:00", punch.TypeBreakStart),
		punchAt(t, "13:00", punch.TypeBreakEnd),
		punchAt(t, "18:00", punch.TypeExit),
	}

	got, ok := Compute(punches, defaultSchedule())
	require.True(t, ok)

	assert.Equal(t, 480, got.WorkedMinutes)
	assert.Equal(t, 0, got.BreakMinutes)
	assert.Equal(t, 420, got.ExpectedMinutes)
	assert.Equal(t, 60, got.BalanceMinutes)
	assert.Equal(t, timesheet.StatusOK, got.Status)
	assert.Equal(t, punches[0].PunchedAt, got.FirstPunchAt)
	assert.Equal(t, punches[3].PunchedAt, got.LastPunchAt)
}

func TestComputeBreakPairCountsAsBreak(t *testing.T) {
	// When a pair does start with break_start, its span is break time.
	punches := []punch.Punch{
		punchAt(t, "12:00", punch.TypeBreakStart),
		punchAt(t, "13:00", punch.TypeBreakEnd),
	}

	got, ok := Compute(punches, defaultSchedule())
	require.True(t, ok)

	assert.Equal(t, 0, got.WorkedMinutes)
	assert.Equal(t, 60, got.BreakMinutes)
	assert.Equal(t, timesheet.StatusReview, got.Status)
}

func TestComputeUnpairedTrailingPunchIgnored(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "09:00", punch.TypeEntry),
		punchAt(t, "12:00", punch.TypeBreakStart),
		punchAt(t, "13:00", punch.TypeBreakEnd),
	}

	got, ok := Compute(punches, defaultSchedule())
	require.True(t, ok)

	// Only the first pair is complete; the 13:00 punch dangles.
	assert.Equal(t, 180, got.WorkedMinutes)
	assert.Equal(t, 0, got.BreakMinutes)
	assert.Equal(t, timesheet.StatusReview, got.Status)
	assert.Equal(t, punches[2].PunchedAt, got.LastPunchAt)
}

func TestComputeBalanceInvariant(t *testing.T) {
	cases := []struct {
		name    string
		punches []punch.Punch
	}{
		{
			name: "short day",
			punches: []punch.Punch{
				punchAt(t, "09:00", punch.TypeEntry),
				punchAt(t, "11:30", punch.TypeBreakStart),
				punchAt(t, "12:00", punch.TypeBreakEnd),
				punchAt(t, "15:00", punch.TypeExit),
			},
		},
		{
			name: "long day",
			punches: []punch.Punch{
				punchAt(t, "07:00", punch.TypeEntry),
				punchAt(t, "12:00", punch.TypeBreakStart),
				punchAt(t, "12:30", punch.TypeBreakEnd),
				punchAt(t, "19:00", punch.TypeExit),
			},
		},
		{
			// Worked sums to 359.5 minutes; the rounded worked total and
			// the balance must still reconcile with expected exactly.
			name: "half-minute worked total",
			punches: []punch.Punch{
				punchAt(t, "09:00:00", punch.TypeEntry),
				punchAt(t, "12:00:00", punch.TypeBreakStart),
				punchAt(t, "13:00:00", punch.TypeBreakEnd),
				punchAt(t, "15:59:30", punch.TypeExit),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Compute(c.punches, defaultSchedule())
			require.True(t, ok)
			assert.Equal(t, got.WorkedMinutes-got.ExpectedMinutes, got.BalanceMinutes)
		})
	}
}

func TestComputeStatusThresholds(t *testing.T) {
	all := []punch.Punch{
		punchAt(t, "09:00", punch.TypeEntry),
		punchAt(t, "12:00", punch.TypeBreakStart),
		punchAt(t, "13:00", punch.TypeBreakEnd),
		punchAt(t, "18:00", punch.TypeExit),
	}

	cases := []struct {
		count int
		want  timesheet.Status
	}{
		{1, timesheet.StatusPending},
		{2, timesheet.StatusReview},
		{3, timesheet.StatusReview},
		{4, timesheet.StatusOK},
	}

	for _, c := range cases {
		got, ok := Compute(all[:c.count], defaultSchedule())
		require.True(t, ok)
		assert.Equalf(t, c.want, got.Status, "status for %d punches", c.count)
	}
}

func TestComputeUsesResolvedSchedule(t *testing.T) {
	start, end := "08:00", "14:00"
	zero := 0
	resolved := schedule.Resolved{
		Schedule: &schedule.WorkSchedule{
			ExpectedStart: &start,
			ExpectedEnd:   &end,
			BreakMinutes:  &zero,
		},
		Source: schedule.SourceIndividual,
	}

	punches := []punch.Punch{
		punchAt(t, "08:00", punch.TypeEntry),
		punchAt(t, "11:00", punch.TypeBreakStart),
		punchAt(t, "11:30", punch.TypeBreakEnd),
		punchAt(t, "14:00", punch.TypeExit),
	}

	got, ok := Compute(punches, resolved)
	require.True(t, ok)

	assert.Equal(t, 360, got.ExpectedMinutes)
	assert.Equal(t, 330, got.WorkedMinutes) // 180 + 150, the lunch gap is unpaired
	assert.Equal(t, -30, got.BalanceMinutes)
}

func TestComputeIsDeterministic(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "09:03", punch.TypeEntry),
		punchAt(t, "12:11", punch.TypeBreakStart),
		punchAt(t, "13:02", punch.TypeBreakEnd),
		punchAt(t, "18:47", punch.TypeExit),
	}

	first, ok := Compute(punches, defaultSchedule())
	require.True(t, ok)
	second, ok := Compute(punches, defaultSchedule())
	require.True(t, ok)

	assert.Equal(t, first, second)
}
