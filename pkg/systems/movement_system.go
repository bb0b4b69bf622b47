package systems

import (
	"github.com/gonewx/arrowfish/pkg/game"
)

// MovementSystem 推进弓和所有实体集合，并移除死亡的实体
type MovementSystem struct {
	session *game.Session
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(s *game.Session) *MovementSystem {
	return &MovementSystem{session: s}
}

// Update 推进一帧
func (sys *MovementSystem) Update(dt float64) {
	s := sys.session

	s.Launcher.Advance(dt)
	s.Projectiles.Update(dt)
	s.Fish.Update(dt)
	s.Bubbles.Update(dt)
	s.Particles.Update(dt)
	s.Inks.Update(dt)
	s.Texts.Update(dt)
}
