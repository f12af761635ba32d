package schedule

import "testing"

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestResolvedExpectedMinutes(t *testing.T) {
	cases := []struct {
		name string
		r    Resolved
		want int
	}{
		{
			name: "no schedule falls back to organization default",
			r:    Resolved{Source: SourceDefault},
			want: 420,
		},
		{
			name: "start without end falls back to default",
			r: Resolved{
				Schedule: &WorkSchedule{ExpectedStart: strPtr("08:00")},
				Source:   SourceIndividual,
			},
			want: 420,
		},
		{
			name: "full day with configured break",
			r: Resolved{
				Schedule: &WorkSchedule{
					ExpectedStart: strPtr("08:00"),
					ExpectedEnd:   strPtr("17:00"),
					BreakMinutes:  intPtr(90),
				},
				Source: SourceSector,
			},
			want: 450,
		},
		{
			name: "break defaults to 60 when unset",
			r: Resolved{
				Schedule: &WorkSchedule{
					ExpectedStart: strPtr("09:00"),
					ExpectedEnd:   strPtr("18:00"),
				},
				Source: SourceIndividual,
			},
			want: 480,
		},
		{
			name: "explicit zero break is honored",
			r: Resolved{
				Schedule: &WorkSchedule{
					ExpectedStart: strPtr("08:00"),
					ExpectedEnd:   strPtr("12:00"),
					BreakMinutes:  intPtr(0),
				},
				Source: SourceIndividual,
			},
			want: 240,
		},
		{
			name: "malformed time falls back to default",
			r: Resolved{
				Schedule: &WorkSchedule{
					ExpectedStart: strPtr("morning"),
					ExpectedEnd:   strPtr("17:00"),
				},
				Source: SourceIndividual,
			},
			want: 420,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.r.ExpectedMinutes()
			if got != c.want {
				t.Errorf("ExpectedMinutes() = %d, want %d", got, c.want)
			}
		})
	}
}
