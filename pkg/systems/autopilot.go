package systems

import (
	"fmt"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/types"
)

// Autopilot 无界面运行时的自动射手
//
// 每 Period 帧瞄准最新生成的鱼（没有鱼时瞄准 Boss 触手的位置）并开始蓄力，
// 蓄力 Hold 帧后松开。
type Autopilot struct {
	Period int
	Hold   int
	tick   int
}

// NewAutopilot 创建默认节奏的自动射手
func NewAutopilot() *Autopilot {
	return &Autopilot{Period: 20, Hold: 15}
}

// Act 在 Tick 之前调用，按节奏产生输入
func (a *Autopilot) Act(sim *Simulation) {
	s := sim.Session()
	switch a.tick % a.Period {
	case 0:
		x, y := s.Config.Field.Width/2, 100.0
		if n := s.Fish.Len(); n > 0 {
			f := s.Fish.At(n - 1)
			x, y = f.X, f.Y
		} else if s.BossActive {
			x, y = s.Boss.X, s.Boss.Y+80
		}
		sim.Press(x, y)
	case a.Hold:
		sim.Release()
	}
	a.tick++
}

// InvariantChecker 逐帧检查会话状态的约束
type InvariantChecker struct {
	session   *game.Session
	lastPhase types.BossPhase
}

// Check 返回第一个被违反的约束
func (c *InvariantChecker) Check(s *game.Session) error {
	if s.Combo > s.MaxCombo {
		return fmt.Errorf("combo %d exceeds max combo %d", s.Combo, s.MaxCombo)
	}
	if s.Combo < 0 {
		return fmt.Errorf("negative combo %d", s.Combo)
	}
	if ch := s.Launcher.Charge; ch < 0 || ch > s.Config.Launcher.MaxCharge {
		return fmt.Errorf("charge out of range: %v", ch)
	}
	if s.TimeLeft < 0 {
		return fmt.Errorf("negative time left %d", s.TimeLeft)
	}
	for _, p := range s.Projectiles.Items() {
		if p.Pierce < 0 {
			return fmt.Errorf("negative pierce %d", p.Pierce)
		}
	}

	// 重新开局后 Boss 阶段从头计算
	if c.session != s {
		c.session = s
		c.lastPhase = types.BossEntering
	}
	if s.Boss != nil {
		if s.Boss.Phase < c.lastPhase {
			return fmt.Errorf("boss phase went back from %s to %s", c.lastPhase, s.Boss.Phase)
		}
		c.lastPhase = s.Boss.Phase
	}
	return nil
}
