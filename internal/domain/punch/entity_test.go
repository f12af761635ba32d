package punch

import "testing"

func TestTypeForCount(t *testing.T) {
	cases := []struct {
		count int
		want  Type
	}{
		{0, TypeEntry},
		{1, TypeBreakStart},
		{2, TypeBreakEnd},
		{3, TypeExit},
		{4, TypeEntry},
		{5, TypeExit},
		{6, TypeEntry},
		{7, TypeExit},
		{10, TypeEntry},
		{11, TypeExit},
	}
	for _, c := range cases {
		got := TypeForCount(c.count)
		if got != c.want {
			t.Errorf("TypeForCount(%d) = %q, want %q", c.count, got, c.want)
		}
	}
}
