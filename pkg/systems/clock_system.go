package systems

import (
	"log"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/types"
)

// ClockSystem 每秒一次的倒计时
//
// 处理剩余时间、狂热倒计时、Boss 登场、生成节奏提速与结束判定。
type ClockSystem struct {
	session *game.Session
}

// NewClockSystem 创建倒计时系统
func NewClockSystem(s *game.Session) *ClockSystem {
	return &ClockSystem{session: s}
}

// ElapseSecond 由外部每秒调用一次，会话未进行时忽略
func (sys *ClockSystem) ElapseSecond() {
	s := sys.session
	if !s.Playing() {
		return
	}

	// 击败 Boss 后的谢幕期间时间冻结
	if !s.BossIn(types.BossDefeated) {
		s.TimeLeft--
	}

	s.TickFever()

	if s.TimeLeft <= s.Config.Boss.SpawnAtSeconds && !s.BossActive && !s.FeverActive {
		s.SpawnBoss()
	}

	if !s.BossActive && !s.FeverActive {
		if interval, ok := sys.intervalFor(s.TimeLeft); ok {
			s.SpawnInterval = interval
		}
	}

	if s.TimeLeft <= 0 {
		log.Printf("[ClockSystem] Time up")
		s.End()
	}
}

// intervalFor 剩余时间对应的生成间隔，取满足条件的最后一档
func (sys *ClockSystem) intervalFor(timeLeft int) (int, bool) {
	interval, ok := 0, false
	for _, step := range sys.session.Config.Spawn.IntervalSteps {
		if timeLeft <= step.AtOrBelow {
			interval, ok = step.Interval, true
		}
	}
	return interval, ok
}
