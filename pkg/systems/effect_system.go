package systems

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/game"
)

// 屏幕效果的衰减参数
const (
	shakeDecay        = 0.9
	shakeCutoff       = 0.5
	comboScaleRecover = 0.05
)

// EffectSystem 屏幕震动与连击数字缩放的逐帧衰减
// 结束画面也继续衰减，因此不检查会话阶段
type EffectSystem struct {
	session *game.Session
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(s *game.Session) *EffectSystem {
	return &EffectSystem{session: s}
}

// Update 推进一帧
func (sys *EffectSystem) Update(dt float64) {
	s := sys.session

	if s.Shake > 0 {
		s.Shake *= math.Pow(shakeDecay, dt)
		if s.Shake < shakeCutoff {
			s.Shake = 0
		}
	}

	if s.ComboScale > 1 {
		s.ComboScale = math.Max(1, s.ComboScale-comboScaleRecover*dt)
	}
}
