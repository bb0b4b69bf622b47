package entities

import (
	"math"
	"testing"

	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/types"
)

func TestFishHitKill(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	f := NewFish(fishDef(cfg, 1), 300, 200, 3, cfg)

	if !f.Hit(1) {
		t.Fatal("expected 1-hp fish to die from 1 damage")
	}
	if f.IsAlive() {
		t.Error("killed fish should not be alive")
	}
	if f.CurrentHealth != 0 {
		t.Errorf("expected hp clamped to 0, got %d", f.CurrentHealth)
	}
	if f.Hit(5) {
		t.Error("hitting a dead fish must not report another kill")
	}
}

func TestFishHitOverkillClamped(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	f := NewFish(fishDef(cfg, 1), 300, 200, 3, cfg)

	f.Hit(10)
	if f.CurrentHealth < 0 {
		t.Errorf("hp should never be reported negative, got %d", f.CurrentHealth)
	}
}

func TestFishKnockback(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	shark := fishDef(cfg, 3)

	tests := []struct {
		name  string
		vx    float64
		wantX float64
	}{
		{"向右游被击退到左侧", 1, 290},
		{"向左游被击退到右侧", -1, 310},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFish(shark, 300, 200, tt.vx, cfg)
			if f.Hit(1) {
				t.Fatal("3-hp fish should survive 1 damage")
			}
			if f.X != tt.wantX {
				t.Errorf("expected x=%f, got %f", tt.wantX, f.X)
			}
			if !f.Wounded() {
				t.Error("fish should be marked wounded")
			}
			if f.CurrentHealth != 2 {
				t.Errorf("expected hp 2, got %d", f.CurrentHealth)
			}
		})
	}
}

func TestFishDespawn(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	def := fishDef(cfg, 1)

	tests := []struct {
		name      string
		x, vx     float64
		wantAlive bool
	}{
		{"刚从左侧进场", -15, 3, true},
		{"游出右侧边界", 849, 3, false},
		{"游出左侧边界", -49, -3, false},
		{"右侧进场未出界", 860, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFish(def, tt.x, 100, tt.vx, cfg)
			f.Advance(1)
			if f.IsAlive() != tt.wantAlive {
				t.Errorf("expected alive=%v, got %v (x=%f)", tt.wantAlive, f.IsAlive(), f.X)
			}
		})
	}
}

func TestSpawnFishEdges(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	def := fishDef(cfg, 1)

	left := SpawnFish(def, newSequenceRandom(0.9, 0.5, 0.5, 0), 1, cfg)
	if left.X != -15 || math.Abs(left.VX-3) > 1e-9 || left.Facing != 1 {
		t.Errorf("expected fish from the left at x=-15 vx=3, got x=%f vx=%f", left.X, left.VX)
	}
	if math.Abs(left.Y-180) > 1e-9 {
		t.Errorf("expected y=180, got %f", left.Y)
	}

	right := SpawnFish(def, newSequenceRandom(0.2, 0, 0.5, 0), 1.3, cfg)
	if right.X != 815 || math.Abs(right.VX+3.9) > 1e-9 || right.Facing != -1 {
		t.Errorf("expected fish from the right at x=815 vx=-3.9, got x=%f vx=%f", right.X, right.VX)
	}
	if right.Kind != types.FishKindNormal {
		t.Errorf("expected normal kind, got %s", right.Kind)
	}
}

func TestFishWobble(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	f := NewFish(fishDef(cfg, 1), 100, 100, 0, cfg)

	f.Advance(1)
	want := 100 + math.Sin(0.1)*0.5
	if math.Abs(f.Y-want) > 1e-9 {
		t.Errorf("expected y=%f, got %f", want, f.Y)
	}
}

func TestBubbleSpawnAndPop(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	def := cfg.PowerUps[1]

	b := SpawnBubble(def, newSequenceRandom(0.7, 0.5, 0), cfg)
	if b.X != -30 || b.VX != 1.5 {
		t.Errorf("expected bubble from the left (x=-30, vx=1.5), got x=%f vx=%f", b.X, b.VX)
	}
	if b.Y != 150 {
		t.Errorf("expected y=150, got %f", b.Y)
	}
	if b.PowerUp != types.PowerUpBeam {
		t.Errorf("expected laser bubble, got %s", b.PowerUp)
	}
	if b.Radius != 25 {
		t.Errorf("expected radius 25, got %f", b.Radius)
	}

	b.Pop()
	if b.IsAlive() {
		t.Error("popped bubble should not be alive")
	}
}

func TestBubbleDespawn(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	b := NewBubble(cfg.PowerUps[0], 849, 100, 1.5, cfg)

	b.Advance(1)
	if b.IsAlive() {
		t.Error("bubble past the right margin should despawn")
	}
}
