package logging

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	l := New("warn")
	if l.enabled(LevelInfo) {
		t.Error("info should be filtered at warn level")
	}
	if !l.enabled(LevelWarn) {
		t.Error("warn should pass at warn level")
	}
	if !l.enabled(LevelError) {
		t.Error("error should pass at warn level")
	}
}
