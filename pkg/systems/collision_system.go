package systems

import (
	"fmt"

	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/game"
)

// CollisionSystem 每帧一次的碰撞结算
//
// 箭从最新到最旧依次处理，每支箭按固定顺序检测：
//  1. Boss（命中后结束本支箭的处理）
//  2. 道具气泡
//  3. 出界（未命中过任何目标的普通箭出界会清零连击）
//  4. 鱼
type CollisionSystem struct {
	session *game.Session
	boss    *BossSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(s *game.Session, boss *BossSystem) *CollisionSystem {
	return &CollisionSystem{
		session: s,
		boss:    boss,
	}
}

// Update 结算本帧所有箭的碰撞
func (sys *CollisionSystem) Update() {
	s := sys.session
	field := s.Config.Field
	projectiles := s.Projectiles.Items()

	for i := len(projectiles) - 1; i >= 0; i-- {
		p := projectiles[i]
		if !p.IsAlive() {
			continue
		}

		if sys.resolveBoss(p) {
			continue
		}

		sys.resolveBubbles(p)
		if !p.IsAlive() {
			continue
		}

		if p.OutOfBounds(field.Width, field.Height) {
			if !p.HasHit && !p.IsBeam() {
				s.ResetCombo()
			}
			p.Kill()
			continue
		}

		sys.resolveFish(p)
	}
}

// resolveBoss 返回 true 表示箭被 Boss 拦截
func (sys *CollisionSystem) resolveBoss(p *entities.Projectile) bool {
	s := sys.session
	if !s.BossActive || s.Boss == nil || !s.Boss.Interactive() {
		return false
	}

	hit := s.Boss.CheckCollision(p)
	if !hit.Hit {
		return false
	}

	p.HasHit = true
	if !p.IsBeam() {
		p.Kill()
	}
	sys.boss.ApplyHit(p, hit)
	s.Burst(p.X, p.Y, game.ColorAlert)
	return true
}

func (sys *CollisionSystem) resolveBubbles(p *entities.Projectile) {
	s := sys.session
	tolerance := s.Config.Collision.BubbleTolerance
	bubbles := s.Bubbles.Items()

	for k := len(bubbles) - 1; k >= 0; k-- {
		b := bubbles[k]
		if !b.IsAlive() || !p.Strikes(b.X, b.Y, b.Radius, tolerance) {
			continue
		}

		s.Launcher.ActivatePowerUp(b.PowerUp)
		b.Pop()
		p.HasHit = true
		s.Burst(b.X, b.Y, b.Def.Color)
		s.Emit(game.SignalPowerUpGranted, b.X, b.Y, float64(b.PowerUp))

		if !p.IsBeam() {
			p.Kill()
			return
		}
	}
}

func (sys *CollisionSystem) resolveFish(p *entities.Projectile) {
	s := sys.session
	tolerance := s.Config.Collision.FishTolerance
	fish := s.Fish.Items()

	for j := len(fish) - 1; j >= 0; j-- {
		f := fish[j]
		if !f.IsAlive() || !p.Strikes(f.X, f.Y, f.Radius, tolerance) {
			continue
		}

		p.HasHit = true
		killed := f.Hit(p.Damage)
		s.Burst(f.X, f.Y, f.Type.Color)

		if killed {
			s.AwardKill(f)
		} else {
			s.FloatText(f.X, f.Y, fmt.Sprintf("-%d", p.Damage), game.ColorWhite)
		}

		switch {
		case p.IsBeam():
			// 激光穿过所有目标
		case p.Pierce > 0:
			p.Pierce--
		default:
			p.Kill()
			return
		}
	}
}
