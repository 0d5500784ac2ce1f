package rasterizer

import (
	"math"
	"testing"
)

func TestProjection_ToRaster(t *testing.T) {
	p := newProjection(100, 100, 1, 1)

	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"centre", V3(0, 0, -1), V3(50, 50, 1)},
		{"top left corner", V3(-1, 1, -1), V3(0, 0, 1)},
		{"bottom right corner", V3(1, -1, -1), V3(100, 100, 1)},
		{"farther is smaller", V3(1, 1, -2), V3(75, 25, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.toRaster(tt.v); !vecNear(got, tt.want, 1e-12) {
				t.Errorf("toRaster(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestProjection_NearPlaneZooms(t *testing.T) {
	p := newProjection(100, 100, 2, 1)
	if got := p.toRaster(V3(0.25, 0, -1)); math.Abs(got.X-75) > eps {
		t.Errorf("x = %v, want 75", got.X)
	}
}

func TestProjection_Aspect(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		device       float64
		wantW, wantH float64
	}{
		{"square on square", 100, 100, 1, 1, 1},
		{"wide frame", 200, 100, 1, 0.5, 1},
		{"tall frame", 100, 200, 1, 1, 0.5},
		{"wide device", 100, 100, 2, 1, 0.5},
		{"matching", 160, 90, 16.0 / 9, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProjection(tt.w, tt.h, 1, tt.device)
			if math.Abs(p.wAspect-tt.wantW) > eps || math.Abs(p.hAspect-tt.wantH) > eps {
				t.Errorf("aspect = (%v, %v), want (%v, %v)", p.wAspect, p.hAspect, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEdgeFunction(t *testing.T) {
	a, b := V3(0, 0, 0), V3(10, 0, 0)

	if got := edgeFunction(a, b, V3(5, 0, 0)); got != 0 {
		t.Errorf("point on edge = %v, want 0", got)
	}
	above := edgeFunction(a, b, V3(5, -3, 0))
	below := edgeFunction(a, b, V3(5, 3, 0))
	if above*below >= 0 {
		t.Errorf("points on opposite sides have same sign: %v, %v", above, below)
	}
	if math.Abs(below) != 30 {
		t.Errorf("|edge| = %v, want twice the triangle area (30)", math.Abs(below))
	}
}
