package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestAddSubScale(t *testing.T) {
	v := Vec2{X: 1, Y: 2}
	w := Vec2{X: 3, Y: -1}

	if got := v.Add(w); got != (Vec2{X: 4, Y: 1}) {
		t.Errorf("Add = %v, want {4 1}", got)
	}
	if got := v.Sub(w); got != (Vec2{X: -2, Y: 3}) {
		t.Errorf("Sub = %v, want {-2 3}", got)
	}
	if got := v.Scale(2.5); got != (Vec2{X: 2.5, Y: 5}) {
		t.Errorf("Scale = %v, want {2.5 5}", got)
	}
}

func TestFloor(t *testing.T) {
	cases := []struct {
		v    Vec2
		want Cell
	}{
		{Vec2{X: 5.5, Y: 5.5}, Cell{X: 5, Y: 5}},
		{Vec2{X: 0.999, Y: 1.0}, Cell{X: 0, Y: 1}},
		{Vec2{X: 7.0, Y: 2.25}, Cell{X: 7, Y: 2}},
	}
	for _, c := range cases {
		if got := c.v.Floor(); got != c.want {
			t.Errorf("Floor(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	got := v.Rotate(math.Pi / 2)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("Rotate(π/2) = %v, want {0 1}", got)
	}
}

// Repeated rotation must preserve length and perpendicularity because
// rotation is an orthogonal transform. Sixteen turns of 2π/16 complete
// a full revolution.
func TestRotatePreservesOrthogonality(t *testing.T) {
	forward := Vec2{X: 0, Y: 1}
	right := Vec2{X: 0.8, Y: 0}
	angle := 2 * math.Pi / 16

	for i := 0; i < 16; i++ {
		forward = forward.Rotate(angle)
		right = right.Rotate(angle)

		if dot := forward.Dot(right); !almostEqual(dot, 0) {
			t.Fatalf("turn %d: forward·right = %g, want 0", i, dot)
		}
		if l := forward.Len(); !almostEqual(l, 1) {
			t.Fatalf("turn %d: |forward| = %g, want 1", i, l)
		}
		if l := right.Len(); !almostEqual(l, 0.8) {
			t.Fatalf("turn %d: |right| = %g, want 0.8", i, l)
		}
	}

	// After a full revolution both vectors are back where they started.
	if !almostEqual(forward.X, 0) || !almostEqual(forward.Y, 1) {
		t.Errorf("forward after full revolution = %v, want {0 1}", forward)
	}
	if !almostEqual(right.X, 0.8) || !almostEqual(right.Y, 0) {
		t.Errorf("right after full revolution = %v, want {0.8 0}", right)
	}
}

func TestAngle(t *testing.T) {
	cases := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{X: 1, Y: 0}, 0},
		{Vec2{X: 0, Y: 1}, math.Pi / 2},
		{Vec2{X: -1, Y: 0}, math.Pi},
		{Vec2{X: 0, Y: -1}, 3 * math.Pi / 2},
	}
	for _, c := range cases {
		if got := c.v.Angle(); !almostEqual(got, c.want) {
			t.Errorf("Angle(%v) = %g, want %g", c.v, got, c.want)
		}
	}
}
