package stats

import "testing"

func TestPercentChange(t *testing.T) {
	cases := []struct {
		previous, current int
		want              string
	}{
		{0, 0, "0"},
		{0, 5, "100"},
		{10, 15, "50.0"},
		{10, 10, "0.0"},
		{10, 5, "-50.0"},
		{4, 5, "25.0"},
		{3, 4, "33.3"},
	}
	for _, c := range cases {
		got := PercentChange(c.previous, c.current)
		if got != c.want {
			t.Errorf("PercentChange(%d, %d) = %q, want %q", c.previous, c.current, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, total int
		want        string
	}{
		{0, 0, "0"},
		{3, 0, "0"},
		{1, 2, "50.0"},
		{2, 3, "66.7"},
		{5, 5, "100.0"},
	}
	for _, c := range cases {
		got := Percent(c.part, c.total)
		if got != c.want {
			t.Errorf("Percent(%d, %d) = %q, want %q", c.part, c.total, got, c.want)
		}
	}
}
