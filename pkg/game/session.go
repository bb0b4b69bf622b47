// Package game 定义一局射鱼游戏的会话状态
//
// Session 持有所有实体集合与计分、连击、狂热、倒计时等跨系统状态，
// 在开局时创建、重开时丢弃，不使用全局单例。
// 各系统（pkg/systems）通过指针接收同一个 Session 并在帧内修改它。
package game

import (
	"fmt"
	"log"

	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/ecs"
	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
	"github.com/google/uuid"
)

// Phase 会话阶段
type Phase int

const (
	// PhaseReady 等待开局
	PhaseReady Phase = iota
	// PhasePlaying 进行中
	PhasePlaying
	// PhaseOver 已结束
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// 提示文字颜色
const (
	ColorWhite     = "#FFFFFF"
	ColorGold      = "#FFDC00"
	ColorRed       = "#FF4136"
	ColorGreen     = "#2ECC40"
	ColorGrey      = "#AAAAAA"
	ColorOrange    = "#FF851B"
	ColorAlert     = "#FF0000"
	ColorYellow    = "#FFFF00"
	ColorCoreGold  = "#FFD700"
	ColorCoreFlame = "#FF4500"
)

// 实体集合的初始容量
const (
	projectileCapacity = 32
	fishCapacity       = 64
	effectCapacity     = 256
)

// Session 一局游戏的全部状态
type Session struct {
	ID     uuid.UUID
	Phase  Phase
	Config *config.GameplayConfig
	Rand   utils.Random

	Score    int
	Combo    int
	MaxCombo int

	FeverActive    bool
	FeverRemaining int // 狂热剩余秒数

	BossActive bool
	Boss       *entities.Boss

	SpawnInterval int // 鱼的生成间隔（帧）
	TimeLeft      int // 剩余秒数
	Frames        int // 进行中的帧计数

	Shake      float64 // 屏幕震动强度
	ComboScale float64 // 连击数字的缩放脉冲

	Launcher    *entities.Launcher
	Projectiles *ecs.Pool[*entities.Projectile]
	Fish        *ecs.Pool[*entities.Fish]
	Bubbles     *ecs.Pool[*entities.Bubble]
	Particles   *ecs.Pool[*entities.Particle]
	Texts       *ecs.Pool[*entities.FloatingText]
	Inks        *ecs.Pool[*entities.InkSplash]

	Scheduler *Scheduler
	Signals   *Dispatcher
}

// NewSession 创建处于就绪阶段的会话
//
// 参数:
//   - cfg: 玩法配置
//   - rng: 随机源，固定种子时整局可复现
//   - signals: 事件分发器，为 nil 时创建新的分发器
func NewSession(cfg *config.GameplayConfig, rng utils.Random, signals *Dispatcher) *Session {
	if signals == nil {
		signals = NewDispatcher()
	}

	s := &Session{
		ID:          uuid.New(),
		Phase:       PhaseReady,
		Config:      cfg,
		Rand:        rng,
		Launcher:    entities.NewLauncher(cfg),
		Projectiles: ecs.NewPool[*entities.Projectile](projectileCapacity),
		Fish:        ecs.NewPool[*entities.Fish](fishCapacity),
		Bubbles:     ecs.NewPool[*entities.Bubble](8),
		Particles:   ecs.NewPool[*entities.Particle](effectCapacity),
		Texts:       ecs.NewPool[*entities.FloatingText](32),
		Inks:        ecs.NewPool[*entities.InkSplash](8),
		Scheduler:   NewScheduler(),
		Signals:     signals,
	}
	s.resetCounters()
	return s
}

func (s *Session) resetCounters() {
	s.Score = 0
	s.Combo = 0
	s.MaxCombo = 0
	s.FeverActive = false
	s.FeverRemaining = 0
	s.BossActive = false
	s.Boss = nil
	s.SpawnInterval = s.Config.Spawn.InitialInterval
	s.TimeLeft = s.Config.Session.DurationSeconds
	s.Frames = 0
	s.Shake = 0
	s.ComboScale = 1
}

// Start 开始一局，丢弃所有实体与待执行的延迟事件
func (s *Session) Start() {
	s.ID = uuid.New()
	s.Phase = PhasePlaying
	s.resetCounters()

	s.Launcher = entities.NewLauncher(s.Config)
	s.Projectiles.Clear()
	s.Fish.Clear()
	s.Bubbles.Clear()
	s.Particles.Clear()
	s.Texts.Clear()
	s.Inks.Clear()
	s.Scheduler.Clear()

	log.Printf("[Session] Started session %s (%ds)", s.ID, s.TimeLeft)
	s.Emit(SignalSessionStarted, 0, 0, 0)
}

// End 结束本局，重复调用无效
func (s *Session) End() {
	if s.Phase != PhasePlaying {
		return
	}
	s.Phase = PhaseOver
	s.Launcher.Charging = false
	log.Printf("[Session] Session %s over: score=%d maxCombo=%d", s.ID, s.Score, s.MaxCombo)
	s.Emit(SignalSessionEnded, 0, 0, float64(s.Score))
}

// Playing 是否进行中
func (s *Session) Playing() bool {
	return s.Phase == PhasePlaying
}

// BossIn 当前是否存在处于指定阶段的 Boss
func (s *Session) BossIn(phase types.BossPhase) bool {
	return s.BossActive && s.Boss != nil && s.Boss.Phase == phase
}

// Emit 广播事件
func (s *Session) Emit(kind SignalKind, x, y, value float64) {
	s.Signals.Dispatch(Signal{Kind: kind, X: x, Y: y, Value: value})
}

// ShakeScreen 设置屏幕震动强度（覆盖当前值）
func (s *Session) ShakeScreen(intensity float64) {
	s.Shake = intensity
	s.Emit(SignalScreenShake, 0, 0, intensity)
}

// Burst 在 (x, y) 生成一组爆炸粒子
func (s *Session) Burst(x, y float64, color string) {
	s.Particles.Add(entities.NewBurst(s.Rand, x, y, color)...)
}

// FloatText 生成飘字
func (s *Session) FloatText(x, y float64, text, color string) {
	s.Texts.Add(entities.NewFloatingText(x, y, text, color))
}

// Ink 生成墨汁
func (s *Session) Ink(x, y float64) {
	s.Inks.Add(entities.NewInkSplash(s.Rand, x, y))
}

// AddProjectiles 加入新发射的箭
func (s *Session) AddProjectiles(shots []*entities.Projectile) {
	if len(shots) == 0 {
		return
	}
	s.Projectiles.Add(shots...)
	s.Emit(SignalProjectileFired, s.Launcher.X, s.Launcher.Y, float64(len(shots)))
}

// SpawnBoss 清空鱼和气泡并召唤 Boss
func (s *Session) SpawnBoss() {
	s.BossActive = true
	s.Fish.Clear()
	s.Bubbles.Clear()
	s.Boss = entities.NewBoss(s.Config, s.Rand)

	field := s.Config.Field
	s.FloatText(field.Width/2, field.Height/3, "WARNING: KRAKEN!", ColorAlert)
	log.Printf("[Session] Boss spawned at %ds remaining", s.TimeLeft)
	s.Emit(SignalBossSpawned, s.Boss.X, s.Boss.Y, 0)
}

// String 用于日志
func (s *Session) String() string {
	return fmt.Sprintf("session %s phase=%s score=%d combo=%d fever=%v time=%d",
		s.ID, s.Phase, s.Score, s.Combo, s.FeverActive, s.TimeLeft)
}
