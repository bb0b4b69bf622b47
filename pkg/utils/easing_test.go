package utils

import (
	"math"
	"testing"
)

func TestEasing(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"EaseOutCubic 起点", EaseOutCubic, 0, 0},
		{"EaseOutCubic 中点", EaseOutCubic, 0.5, 0.875},
		{"EaseOutCubic 越界截断", EaseOutCubic, 2, 1},
		{"EaseOutBack 起点", EaseOutBack, 0, 0},
		{"EaseOutBack 终点", EaseOutBack, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	if EaseOutBack(0.7) <= 1 {
		t.Error("EaseOutBack should overshoot before settling")
	}
}

func TestBlink(t *testing.T) {
	if !Blink(0, 12) || !Blink(5, 12) || Blink(6, 12) || Blink(11, 12) || !Blink(12, 12) {
		t.Error("unexpected blink pattern")
	}
	if !Blink(7, 1) {
		t.Error("period <= 1 should always be on")
	}
}

func TestLerpClamp(t *testing.T) {
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Error("Lerp(10, 20, 0.25) should be 12.5")
	}
	if Clamp01(-1) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of range")
	}
}
