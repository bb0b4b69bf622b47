package systems

import (
	"testing"

	"github.com/gonewx/arrowfish/pkg/types"
)

func TestSpawnSystemCadence(t *testing.T) {
	tests := []struct {
		name        string
		rng         float64
		frames      int
		bossActive  bool
		wantFish    int
		wantFishID  int
		wantBubbles int
	}{
		{name: "非生成帧", rng: 0.1, frames: 61, wantFish: 0},
		{name: "生成小丑鱼", rng: 0.1, frames: 60, wantFish: 1, wantFishID: 1},
		{name: "生成金枪鱼", rng: 0.6, frames: 120, wantFish: 1, wantFishID: 2},
		{name: "气泡帧命中概率", rng: 0.1, frames: 300, wantFish: 1, wantFishID: 1, wantBubbles: 1},
		{name: "气泡帧未命中概率", rng: 0.6, frames: 300, wantFish: 1, wantFishID: 2},
		{name: "Boss 战不生成", rng: 0.1, frames: 300, bossActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStartedSession(fixedRandom{tt.rng})
			s.Frames = tt.frames
			s.BossActive = tt.bossActive

			NewSpawnSystem(s).Update()

			if s.Fish.Len() != tt.wantFish {
				t.Fatalf("expected %d fish, got %d", tt.wantFish, s.Fish.Len())
			}
			if tt.wantFish > 0 && s.Fish.At(0).Type.ID != tt.wantFishID {
				t.Errorf("expected fish type %d, got %d", tt.wantFishID, s.Fish.At(0).Type.ID)
			}
			if s.Bubbles.Len() != tt.wantBubbles {
				t.Errorf("expected %d bubbles, got %d", tt.wantBubbles, s.Bubbles.Len())
			}
			if tt.wantBubbles > 0 && s.Bubbles.At(0).PowerUp != types.PowerUpSpread {
				t.Errorf("expected spread bubble, got %v", s.Bubbles.At(0).PowerUp)
			}
		})
	}
}

func TestSpawnSystemFeverInterval(t *testing.T) {
	s := newStartedSession(fixedRandom{0.1})
	s.EnterFever(5)
	sys := NewSpawnSystem(s)

	for s.Frames = 1; s.Frames <= 60; s.Frames++ {
		sys.Update()
	}

	if s.Fish.Len() != 6 {
		t.Errorf("expected 6 fish in 60 fever frames, got %d", s.Fish.Len())
	}
}

func TestSpeedMultiplier(t *testing.T) {
	tests := []struct {
		timeLeft int
		fever    bool
		want     float64
	}{
		{30, false, 1.0},
		{20, false, 1.0},
		{19, false, 1.3},
		{30, true, 0.8},
		{5, true, 0.8},
	}

	for _, tt := range tests {
		s := newStartedSession(fixedRandom{0.1})
		s.TimeLeft = tt.timeLeft
		s.FeverActive = tt.fever

		if got := NewSpawnSystem(s).SpeedMultiplier(); got != tt.want {
			t.Errorf("timeLeft=%d fever=%v: expected %v, got %v", tt.timeLeft, tt.fever, tt.want, got)
		}
	}
}
