package game

import (
	"log"
	"math"

	"github.com/gonewx/arrowfish/pkg/types"
)

// ComboScore 连击加成后的得分
// k 为本次击杀计入后的连击数（k >= 1），step 为每级加成比例
func ComboScore(base, k int, step float64) int {
	if k < 1 {
		k = 1
	}
	return int(math.Floor(float64(base) * (1 + float64(k-1)*step)))
}

// RegisterCombo 记录一次非炸弹击杀
//
// 连击 +1 并更新最高连击；未处于狂热且达到阈值时尝试进入狂热。
// 狂热期间连击继续累加但不会再次触发狂热。
//
// 返回:
//   - int: 计入本次击杀后的连击数，用于计分（在可能的清零之前取值）
func (s *Session) RegisterCombo() int {
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	k := s.Combo

	if !s.FeverActive && s.Combo >= s.Config.Fever.Threshold {
		s.EnterFever(s.Config.Fever.DurationSeconds)
	}
	return k
}

// ResetCombo 连击清零
func (s *Session) ResetCombo() {
	s.Combo = 0
}

// EnterFever 进入狂热模式
//
// Boss 处于触手阶段时禁止进入，改为清零连击；
// Boss 核心暴露时允许进入，并把剩余时间重置为固定的短时间。
//
// 参数:
//   - durationSeconds: 狂热持续秒数
//
// 返回:
//   - bool: 是否成功进入
func (s *Session) EnterFever(durationSeconds int) bool {
	if s.BossIn(types.BossEngaged) {
		s.Combo = 0
		log.Printf("[Fever] Blocked during tentacle phase, combo reset")
		s.Emit(SignalFeverBlocked, 0, 0, 0)
		return false
	}

	if s.BossIn(types.BossCoreExposed) {
		s.TimeLeft = s.Config.Fever.BossRemainingSeconds
	}

	s.FeverActive = true
	s.FeverRemaining = durationSeconds
	s.SpawnInterval = s.Config.Spawn.FeverInterval

	field := s.Config.Field
	s.FloatText(field.Width/2, field.Height/2, "FEVER MODE!", ColorRed)
	log.Printf("[Fever] Started (%ds)", durationSeconds)
	s.Emit(SignalFeverStarted, 0, 0, float64(durationSeconds))
	return true
}

// ExitFever 退出狂热：恢复初始生成间隔并清零连击
func (s *Session) ExitFever() {
	s.FeverActive = false
	s.FeverRemaining = 0
	s.SpawnInterval = s.Config.Spawn.InitialInterval
	s.Combo = 0
	log.Printf("[Fever] Ended")
	s.Emit(SignalFeverEnded, 0, 0, 0)
}

// TickFever 每秒调用一次，倒计时结束时退出狂热
func (s *Session) TickFever() {
	if !s.FeverActive {
		return
	}
	s.FeverRemaining--
	if s.FeverRemaining <= 0 {
		s.ExitFever()
	}
}
