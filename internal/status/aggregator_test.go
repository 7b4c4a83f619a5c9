package status

import "testing"

func TestOverallStatusPriority(t *testing.T) {
	cases := []struct {
		name string
		s    Summary
		want string
	}{
		{"down wins over everything", Summary{Up: 3, Down: 1, Unknown: 2}, "down"},
		{"unknown wins over maintenance/up/paused", Summary{Up: 1, Maintenance: 1, Paused: 1, Unknown: 1}, "unknown"},
		{"maintenance wins over up/paused", Summary{Up: 1, Paused: 1, Maintenance: 1}, "maintenance"},
		{"up wins over paused", Summary{Up: 1, Paused: 1}, "up"},
		{"all paused", Summary{Paused: 5}, "paused"},
		{"all zero", Summary{}, "unknown"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := overallStatus(c.s); got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestTally(t *testing.T) {
	var s Summary
	for _, status := range []string{"up", "up", "down", "maintenance", "paused", "unknown", "weird"} {
		tally(&s, status)
	}
	if s.Up != 2 || s.Down != 1 || s.Maintenance != 1 || s.Paused != 1 || s.Unknown != 2 {
		t.Fatalf("unexpected tally: %+v", s)
	}
}
