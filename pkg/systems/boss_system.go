package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// Boss 相关的震动强度
const (
	arrivalShake  = 10
	tentacleShake = 5
	exposedShake  = 20
	tremorShake   = 2
	defeatShake   = 30

	coreHitComboScale = 1.5
)

// BossSystem 推进 Boss 并把 Boss 的事件和命中结果落实到会话上
//
// Boss 本身只负责阶段与伤害，计分、特效、狂热和谢幕流程都在这里处理。
type BossSystem struct {
	session *game.Session
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(s *game.Session) *BossSystem {
	return &BossSystem{session: s}
}

// Update 推进 Boss 一帧并处理其产生的事件
func (sys *BossSystem) Update(dt float64) {
	s := sys.session
	if !s.BossActive || s.Boss == nil {
		return
	}

	s.Boss.Advance(dt)
	for _, ev := range s.Boss.DrainEvents() {
		sys.handleEvent(ev)
	}
}

func (sys *BossSystem) handleEvent(ev entities.BossEvent) {
	s := sys.session
	b := s.Boss

	switch ev {
	case entities.BossArrived:
		log.Printf("[BossSystem] Kraken engaged")
		s.ShakeScreen(arrivalShake)
		s.Emit(game.SignalBossEngaged, b.X, b.Y, 0)

	case entities.BossCoreExposed:
		log.Printf("[BossSystem] Core exposed")
		s.ShakeScreen(exposedShake)
		s.FloatText(b.X, b.Y, "CORE EXPOSED!", game.ColorAlert)
		s.Emit(game.SignalCoreExposed, b.X, b.Y, 0)
		s.EnterFever(s.Config.Fever.BossDurationSeconds)

	case entities.BossTremor:
		s.ShakeScreen(tremorShake)
	}
}

// ApplyHit 结算一次命中 Boss 的结果（不含命中点的通用爆炸）
//
// 参数:
//   - p: 命中的箭
//   - hit: Boss.CheckCollision 的返回值
func (sys *BossSystem) ApplyHit(p *entities.Projectile, hit entities.BossHit) {
	s := sys.session
	cfg := s.Config.Boss

	if hit.TentacleDestroyed {
		s.Score += cfg.TentacleBounty
		s.FloatText(hit.TentacleX, hit.TentacleY, fmt.Sprintf("+%d", cfg.TentacleBounty), game.ColorOrange)
		s.Ink(hit.TentacleX, hit.TentacleY)
		s.ShakeScreen(tentacleShake)
		log.Printf("[BossSystem] Tentacle %d destroyed, %d remaining", hit.Tentacle, s.Boss.TentaclesRemaining())
		s.Emit(game.SignalTentacleDestroyed, hit.TentacleX, hit.TentacleY, float64(cfg.TentacleBounty))
	}

	if hit.CoreHit {
		s.Burst(p.X, p.Y, game.ColorCoreGold)
		s.Burst(p.X, p.Y, game.ColorCoreFlame)
		s.ComboScale = coreHitComboScale
		s.Emit(game.SignalCoreHit, p.X, p.Y, float64(s.Boss.Core.CurrentHealth))
	}

	if hit.Defeated {
		sys.defeat()
	}
}

// defeat 击败奖励与谢幕：连续爆炸后结束本局
func (sys *BossSystem) defeat() {
	s := sys.session
	cfg := s.Config.Boss
	b := s.Boss

	s.Score += cfg.DefeatBounty
	s.FloatText(b.X, b.Y, fmt.Sprintf("VICTORY! +%d", cfg.DefeatBounty), game.ColorGold)
	s.ShakeScreen(defeatShake)
	log.Printf("[BossSystem] Kraken defeated, score=%d", s.Score)
	s.Emit(game.SignalBossDefeated, b.X, b.Y, float64(cfg.DefeatBounty))

	for i := 0; i < cfg.ExplosionCount; i++ {
		s.Scheduler.After(i*cfg.ExplosionIntervalTicks, func() {
			x := b.X + utils.Spread(s.Rand, cfg.ExplosionSpread/2)
			y := b.Y + utils.Spread(s.Rand, cfg.ExplosionSpread/2)
			s.Burst(x, y, game.ColorAlert)
		})
	}
	s.Scheduler.After(cfg.EndDelayTicks, s.End)
}
