package systems

import (
	"testing"

	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

func newCollisionFixture() (*game.Session, *CollisionSystem) {
	s := newStartedSession(utils.NewRandom(3))
	return s, NewCollisionSystem(s, NewBossSystem(s))
}

func TestCollisionBubbleGrantsPowerUp(t *testing.T) {
	s, sys := newCollisionFixture()
	s.Combo = 2
	kinds := recordSignals(s.Signals)

	def, _ := s.Config.PowerUpType(types.PowerUpBeam)
	b := entities.NewBubble(def, 300, 200, 0, s.Config)
	s.Bubbles.Add(b)
	p := placeArrow(s, 310, 200, 0, 1)

	sys.Update()

	if s.Launcher.PowerUp != types.PowerUpBeam {
		t.Errorf("expected beam power-up, got %v", s.Launcher.PowerUp)
	}
	if b.IsAlive() || p.IsAlive() {
		t.Error("expected bubble and arrow to be consumed")
	}
	if s.Combo != 2 {
		t.Errorf("bubble hit must not touch combo, got %d", s.Combo)
	}
	if countSignal(*kinds, game.SignalPowerUpGranted) != 1 {
		t.Error("expected power_up_granted signal")
	}
}

func TestCollisionPierce(t *testing.T) {
	s, sys := newCollisionFixture()
	first := placeFish(s, 1, 200, 200)
	second := placeFish(s, 1, 200, 200)
	third := placeFish(s, 1, 200, 200)
	p := placeArrow(s, 200, 200, 1, 1)

	sys.Update()

	// 从最新的鱼开始检测
	if third.IsAlive() || second.IsAlive() {
		t.Error("expected the two newest fish to die")
	}
	if !first.IsAlive() {
		t.Error("pierce 1 should stop after the second fish")
	}
	if p.IsAlive() {
		t.Error("arrow should be spent")
	}
	if s.Combo != 2 || s.Score != 10+11 {
		t.Errorf("expected combo 2 and score 21, got combo=%d score=%d", s.Combo, s.Score)
	}
}

func TestCollisionWoundsWithoutKill(t *testing.T) {
	s, sys := newCollisionFixture()
	shark := placeFish(s, 3, 400, 200)
	placeArrow(s, 400, 200, 0, 1)

	sys.Update()

	if !shark.IsAlive() || shark.CurrentHealth != 2 {
		t.Fatalf("expected wounded shark with 2 hp, got alive=%v hp=%d", shark.IsAlive(), shark.CurrentHealth)
	}
	if shark.X != 410 {
		t.Errorf("expected knockback to x=410, got %v", shark.X)
	}
	if s.Texts.Len() != 1 || s.Texts.At(0).Text != "-1" {
		t.Error("expected -1 damage text")
	}
	if s.Particles.Len() != entities.BurstSize {
		t.Errorf("expected one burst, got %d particles", s.Particles.Len())
	}
	if s.Combo != 0 {
		t.Errorf("wounding must not count as combo, got %d", s.Combo)
	}
}

func TestCollisionOutOfBounds(t *testing.T) {
	tests := []struct {
		name      string
		beam      bool
		hasHit    bool
		wantCombo int
	}{
		{"未命中的普通箭清零连击", false, false, 0},
		{"命中过的普通箭保留连击", false, true, 3},
		{"激光不清零连击", true, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sys := newCollisionFixture()
			s.Combo = 3

			var p *entities.Projectile
			if tt.beam {
				p = entities.NewBeam(900, 100, 0, 10, 999, 10, 30, 5)
				s.Projectiles.Add(p)
			} else {
				p = placeArrow(s, -5, 100, 0, 1)
			}
			p.HasHit = tt.hasHit

			sys.Update()

			if p.IsAlive() {
				t.Error("expected projectile removed")
			}
			if s.Combo != tt.wantCombo {
				t.Errorf("expected combo %d, got %d", tt.wantCombo, s.Combo)
			}
		})
	}
}

func TestCollisionBossBodyBlocks(t *testing.T) {
	s, sys := newCollisionFixture()
	s.SpawnBoss()
	b := s.Boss
	b.Phase = types.BossEngaged
	p := placeArrow(s, b.X, b.Y, 0, 3)

	sys.Update()

	if p.IsAlive() {
		t.Error("body should stop the arrow")
	}
	if s.Score != 0 || b.TentaclesRemaining() != 4 {
		t.Errorf("body block must not deal damage, score=%d tentacles=%d", s.Score, b.TentaclesRemaining())
	}
	if s.Particles.Len() != entities.BurstSize {
		t.Errorf("expected impact burst, got %d particles", s.Particles.Len())
	}
}

func TestCollisionTentacleKill(t *testing.T) {
	s, sys := newCollisionFixture()
	s.SpawnBoss()
	b := s.Boss
	b.Phase = types.BossEngaged
	tentacle := &b.Tentacles[2]
	placeArrow(s, b.X+tentacle.OffsetX, b.Y+tentacle.OffsetY+tentacle.Height/2, 0, 2)

	sys.Update()

	if !tentacle.Dead {
		t.Fatal("expected tentacle destroyed")
	}
	if s.Score != 500 {
		t.Errorf("expected +500, got %d", s.Score)
	}
	if s.Inks.Len() != 1 {
		t.Errorf("expected ink splash, got %d", s.Inks.Len())
	}
	if s.Shake != 5 {
		t.Errorf("expected shake 5, got %v", s.Shake)
	}
}

func TestCollisionBeamThroughTentacle(t *testing.T) {
	s, sys := newCollisionFixture()
	s.SpawnBoss()
	b := s.Boss
	b.Phase = types.BossEngaged
	tentacle := &b.Tentacles[0]

	beam := entities.NewBeam(b.X+tentacle.OffsetX, b.Y+tentacle.OffsetY+10, -1.5707963267948966, 24, 999, 10, 30, 5)
	s.Projectiles.Add(beam)

	sys.Update()

	if !tentacle.Dead {
		t.Error("beam deals 5 damage and should destroy a 2 hp tentacle")
	}
	if !beam.IsAlive() {
		t.Error("beam should survive boss hits")
	}
}
