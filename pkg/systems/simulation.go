// Package systems 实现每帧推进会话的各个系统，以及把它们串起来的 Simulation
//
// 一帧的固定顺序：
//
//	效果衰减 -> 帧计数 -> 到期的延迟事件 -> 生成 -> 移动 -> Boss -> 碰撞
//
// 倒计时独立于帧，由前端每秒调用 ElapseSecond。
package systems

import (
	"log"

	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// tickDelta 每次 Tick 推进的帧数
const tickDelta = 1.0

// Simulation 一局游戏的驱动器，是会话状态的唯一持有者
//
// 所有方法都必须在同一个 goroutine 中调用。
type Simulation struct {
	config  *config.GameplayConfig
	rng     utils.Random
	signals *game.Dispatcher
	session *game.Session

	spawn     *SpawnSystem
	movement  *MovementSystem
	boss      *BossSystem
	collision *CollisionSystem
	clock     *ClockSystem
	effects   *EffectSystem
}

// NewSimulation 创建处于就绪阶段的模拟
//
// 参数:
//   - cfg: 玩法配置
//   - rng: 随机源，固定种子时整局可复现
//   - signals: 事件分发器，为 nil 时创建新的分发器
func NewSimulation(cfg *config.GameplayConfig, rng utils.Random, signals *game.Dispatcher) *Simulation {
	if signals == nil {
		signals = game.NewDispatcher()
	}
	sim := &Simulation{
		config:  cfg,
		rng:     rng,
		signals: signals,
	}
	sim.attach(game.NewSession(cfg, rng, signals))
	return sim
}

// attach 为会话创建全部系统
func (sim *Simulation) attach(s *game.Session) {
	sim.session = s
	sim.spawn = NewSpawnSystem(s)
	sim.movement = NewMovementSystem(s)
	sim.boss = NewBossSystem(s)
	sim.collision = NewCollisionSystem(s, sim.boss)
	sim.clock = NewClockSystem(s)
	sim.effects = NewEffectSystem(s)
}

// Start 开始一局
func (sim *Simulation) Start() {
	sim.session.Start()
}

// Restart 丢弃当前会话（包括待执行的延迟事件）并开始新的一局
func (sim *Simulation) Restart() {
	log.Printf("[Simulation] Restarting, previous %s", sim.session)
	sim.session.Scheduler.Clear()
	sim.attach(game.NewSession(sim.config, sim.rng, sim.signals))
	sim.session.Start()
}

// Tick 推进一帧
func (sim *Simulation) Tick() {
	s := sim.session
	sim.effects.Update(tickDelta)
	if !s.Playing() {
		return
	}

	s.Frames++
	s.Scheduler.RunDue(s.Frames)
	if !s.Playing() {
		return
	}

	sim.spawn.Update()
	sim.movement.Update(tickDelta)
	sim.boss.Update(tickDelta)
	sim.collision.Update()
}

// ElapseSecond 外部每秒调用一次
func (sim *Simulation) ElapseSecond() {
	sim.clock.ElapseSecond()
}

// Press 按下指针：狂热时立即满蓄力发射，否则开始蓄力
func (sim *Simulation) Press(x, y float64) {
	s := sim.session
	if !s.Playing() {
		return
	}

	if s.FeverActive {
		s.Launcher.Aim(x, y)
		s.AddProjectiles(s.Launcher.InstantFire())
		return
	}
	s.Launcher.StartCharging(x, y)
}

// Move 移动指针：瞄准
func (sim *Simulation) Move(x, y float64) {
	if !sim.session.Playing() {
		return
	}
	sim.session.Launcher.Aim(x, y)
}

// Release 松开指针：非狂热时发射蓄力的箭
// 狂热中松开会放弃蓄力
func (sim *Simulation) Release() {
	s := sim.session
	if !s.Playing() {
		return
	}

	if s.FeverActive {
		s.Launcher.Charging = false
		s.Launcher.Charge = 0
		return
	}
	s.AddProjectiles(s.Launcher.Release())
}

// Snapshot 当前状态的只读快照
func (sim *Simulation) Snapshot() game.Snapshot {
	return sim.session.Snapshot()
}

// Session 当前会话，重开后会变化
func (sim *Simulation) Session() *game.Session {
	return sim.session
}

// Signals 事件分发器，重开后保持不变
func (sim *Simulation) Signals() *game.Dispatcher {
	return sim.signals
}

// Phase 当前会话阶段
func (sim *Simulation) Phase() game.Phase {
	return sim.session.Phase
}
