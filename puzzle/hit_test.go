package puzzle

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDominantAxis(t *testing.T) {
	tests := []struct {
		name string
		v    r3.Vec
		want Axis
	}{
		{"pure x", r3.Vec{X: 1}, AxisX},
		{"pure y", r3.Vec{Y: -1}, AxisY},
		{"pure z", r3.Vec{Z: 0.5}, AxisZ},
		{"skewed toward z", r3.Vec{X: 0.1, Y: 0.2, Z: 0.9}, AxisZ},
		{"negative dominant", r3.Vec{X: -0.9, Y: 0.3}, AxisX},
		{"xy tie resolves x", r3.Vec{X: 1, Y: 1}, AxisX},
		{"yz tie resolves y", r3.Vec{Y: 1, Z: 1}, AxisY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantAxis(tt.v); got != tt.want {
				t.Errorf("DominantAxis(%+v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLineFromHit(t *testing.T) {
	hit := Coord{X: 2, Y: 1, Z: 3}

	axis, index := LineFromHit(hit, r3.Vec{X: -1})
	if axis != AxisX || index != 2 {
		t.Errorf("x-face hit: got %v=%d, want x=2", axis, index)
	}

	axis, index = LineFromHit(hit, r3.Vec{Y: 1, Z: 0.2})
	if axis != AxisY || index != 1 {
		t.Errorf("y-face hit: got %v=%d, want y=1", axis, index)
	}

	axis, index = LineFromHit(hit, r3.Vec{Z: -0.8, X: 0.1})
	if axis != AxisZ || index != 3 {
		t.Errorf("z-face hit: got %v=%d, want z=3", axis, index)
	}
}
