package utils

import (
	"testing"

	"pgregory.net/rapid"
)

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }
func (c constRandom) IntN(n int) int   { return int(float64(c) * float64(n)) }

func TestChooseWeighted(t *testing.T) {
	weights := []float64{0.5, 0.25, 0.05, 0.1, 0.1}

	tests := []struct {
		roll float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{0.74, 1},
		{0.76, 2},
		{0.85, 3},
		{0.95, 4},
	}

	for _, tt := range tests {
		if got := ChooseWeighted(constRandom(tt.roll), weights); got != tt.want {
			t.Errorf("roll %v: expected %d, got %d", tt.roll, tt.want, got)
		}
	}

	if got := ChooseWeighted(constRandom(0.5), nil); got != -1 {
		t.Errorf("expected -1 for empty weights, got %d", got)
	}
	if got := ChooseWeighted(constRandom(0.5), []float64{0, 0}); got != 0 {
		t.Errorf("expected 0 for zero weights, got %d", got)
	}
}

// 任意种子下选出的下标都在范围内且权重为正
func TestChooseWeightedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		weights := rapid.SliceOfN(rapid.Float64Range(0, 10), 1, 8).Draw(rt, "weights")
		weights = append(weights, 1)
		rng := NewRandom(rapid.Uint64Min(1).Draw(rt, "seed"))

		i := ChooseWeighted(rng, weights)
		if i < 0 || i >= len(weights) {
			rt.Fatalf("index %d out of range", i)
		}
		if weights[i] == 0 {
			rt.Fatalf("picked zero-weight index %d", i)
		}
	})
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}

func TestSpread(t *testing.T) {
	if got := Spread(constRandom(0), 50); got != -50 {
		t.Errorf("expected -50, got %v", got)
	}
	if got := Spread(constRandom(0.5), 50); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
