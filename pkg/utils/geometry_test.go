package utils

import (
	"math"
	"testing"
)

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"内部", 25, 50, true},
		{"左边界", 0, 50, false},
		{"右边界", 50, 50, false},
		{"上边界", 25, 0, false},
		{"外部", 60, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 0, 0, 50, 100); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWithinRadiusIsStrict(t *testing.T) {
	if WithinRadius(0, 0, 200, 0, 200) {
		t.Error("distance equal to radius should not count")
	}
	if !WithinRadius(0, 0, 199.9, 0, 200) {
		t.Error("distance below radius should count")
	}
}

func TestRayStrikes(t *testing.T) {
	up := -math.Pi / 2

	tests := []struct {
		name   string
		tx, ty float64
		want   bool
	}{
		{"正前方", 400, 100, true},
		{"侧向偏移在范围内", 415, 100, true},
		{"侧向偏移超出", 425, 100, false},
		{"身后", 400, 600, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RayStrikes(400, 500, up, tt.tx, tt.ty, 20); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToLocalFrame(t *testing.T) {
	forward, lateral := ToLocalFrame(0, 0, 0, 10, 3)
	if math.Abs(forward-10) > 1e-9 || math.Abs(lateral-3) > 1e-9 {
		t.Errorf("expected (10, 3), got (%v, %v)", forward, lateral)
	}
}
