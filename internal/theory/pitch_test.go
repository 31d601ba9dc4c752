package theory

import "testing"

func TestPitchClass(t *testing.T) {
	tests := []struct {
		note string
		want int
	}{
		{"C", 0}, {"B#", 0},
		{"C#", 1}, {"Db", 1},
		{"E", 4}, {"Fb", 4},
		{"E#", 5}, {"F", 5},
		{"A#", 10}, {"Bb", 10},
		{"Cb", 11}, {"B", 11},
	}

	for _, tc := range tests {
		got, ok := PitchClass(tc.note)
		if !ok || got != tc.want {
			t.Errorf("PitchClass(%q) = %d, %v; want %d", tc.note, got, ok, tc.want)
		}
	}
}

func TestPitchClass_Unknown(t *testing.T) {
	for _, n := range []string{"", "H", "c", "C##", "Bbb"} {
		if _, ok := PitchClass(n); ok {
			t.Errorf("PitchClass(%q) unexpectedly resolved", n)
		}
	}
}

func TestEnharmonic(t *testing.T) {
	if !Enharmonic("C#", "Db") {
		t.Error("C# and Db should be enharmonic")
	}
	if !Enharmonic("B#", "C") {
		t.Error("B# and C should be enharmonic")
	}
	if Enharmonic("C", "D") {
		t.Error("C and D are not enharmonic")
	}
	if Enharmonic("X", "X") {
		t.Error("unknown spellings must never be enharmonic")
	}
}
