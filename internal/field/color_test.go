package field

import "testing"

func TestMixEndpoints(t *testing.T) {
	if got := Mix(0); got != Accent {
		t.Errorf("Mix(0) = %v, want accent %v", got, Accent)
	}
	if got := Mix(1); got != Cyan {
		t.Errorf("Mix(1) = %v, want cyan %v", got, Cyan)
	}
}

func TestMixFormula(t *testing.T) {
	// Midpoint, checked channel by channel against the rounding formula.
	got := Mix(0.5)
	want := [3]uint8{
		lerpChannel(Accent.R, Cyan.R, 0.5),
		lerpChannel(Accent.G, Cyan.G, 0.5),
		lerpChannel(Accent.B, Cyan.B, 0.5),
	}
	if got.R != want[0] || got.G != want[1] || got.B != want[2] {
		t.Errorf("Mix(0.5) = %v, want %v", got, want)
	}
	if got.A != 0xff {
		t.Errorf("Mix(0.5) alpha = %d, want opaque", got.A)
	}
}

func TestMixMonotonic(t *testing.T) {
	// Every channel must move monotonically from accent to cyan.
	prev := Mix(0)
	for i := 1; i <= 100; i++ {
		cur := Mix(float64(i) / 100)
		if !channelMonotonic(Accent.R, Cyan.R, prev.R, cur.R) ||
			!channelMonotonic(Accent.G, Cyan.G, prev.G, cur.G) ||
			!channelMonotonic(Accent.B, Cyan.B, prev.B, cur.B) {
			t.Fatalf("Mix not monotonic between t=%v and t=%v: %v -> %v", float64(i-1)/100, float64(i)/100, prev, cur)
		}
		prev = cur
	}
}

func channelMonotonic(from, to, prev, cur uint8) bool {
	if from <= to {
		return cur >= prev
	}
	return cur <= prev
}
