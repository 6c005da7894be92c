package density

import (
	"errors"
	"testing"
)

func TestCapacity(t *testing.T) {
	testCases := []struct {
		name    string
		level   Level
		version int
		want    int
	}{
		{
			name:    "L version 1",
			level:   LevelL,
			version: 1,
			want:    17,
		},
		{
			name:    "L version 40",
			level:   LevelL,
			version: 40,
			want:    2953,
		},
		{
			name:    "M version 1",
			level:   LevelM,
			version: 1,
			want:    14,
		},
		{
			name:    "Q version 10",
			level:   LevelQ,
			version: 10,
			want:    151,
		},
		{
			name:    "H version 1",
			level:   LevelH,
			version: 1,
			want:    7,
		},
		{
			name:    "H version 40",
			level:   LevelH,
			version: 40,
			want:    1273,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Capacity(tc.level, tc.version)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCapacityOutOfRange(t *testing.T) {
	testCases := []struct {
		name    string
		level   Level
		version int
	}{
		{
			name:    "version zero",
			level:   LevelL,
			version: 0,
		},
		{
			name:    "version too big",
			level:   LevelL,
			version: MaxVersion + 1,
		},
		{
			name:    "bad level",
			level:   Level(42),
			version: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Capacity(tc.level, tc.version)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("got %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestCapacityMonotonic(t *testing.T) {
	for _, l := range Levels {
		prev := 0
		for v := 1; v <= MaxVersion; v++ {
			got, err := Capacity(l, v)
			if err != nil {
				t.Fatalf("level %s version %d: %v", l, v, err)
			}
			if got <= 0 {
				t.Errorf("level %s version %d: capacity %d, want > 0", l, v, got)
			}
			if got < prev {
				t.Errorf("level %s version %d: capacity %d < version %d capacity %d", l, v, got, v-1, prev)
			}
			prev = got
		}
	}
}

// Stronger correction means more redundancy and less payload,
// for every version H <= Q <= M <= L must hold.
func TestCapacityLevelOrder(t *testing.T) {
	for v := 1; v <= MaxVersion; v++ {
		var caps [4]int
		for i, l := range []Level{LevelH, LevelQ, LevelM, LevelL} {
			c, err := Capacity(l, v)
			if err != nil {
				t.Fatalf("level %s version %d: %v", l, v, err)
			}
			caps[i] = c
		}
		for i := 1; i < len(caps); i++ {
			if caps[i] < caps[i-1] {
				t.Errorf("version %d: capacities not ordered H<=Q<=M<=L: %v", v, caps)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels {
		got, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != l {
			t.Errorf("got %v, want %v", got, l)
		}
	}
	if _, err := ParseLevel("X"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}
