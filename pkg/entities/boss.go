package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// Boss 动画参数（以帧为单位换算自 60fps）
const (
	bossClockRate       = 0.05 // 动画时钟每帧增量
	bossSwayAmplitude   = 10.0
	tentacleBaseOffsetY = 60.0
	tentacleSwingY      = 40.0
	tentacleSwingX      = 10.0
	corePulseRate       = 10.0 / 3.0 // 核心脉动相对动画时钟的倍率
	corePulseAmplitude  = 0.1
)

// BossEvent Boss 在 Advance 中产生、需要会话响应的事件
type BossEvent int

const (
	// BossArrived 入场完成，进入触手阶段
	BossArrived BossEvent = iota
	// BossCoreExposed 四条触手全部被斩断，核心暴露
	BossCoreExposed
	// BossTremor 核心暴露阶段的随机轻微震动
	BossTremor
)

// Tentacle 触手，创建后不会恢复
type Tentacle struct {
	components.HealthComponent
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Dead    bool
}

// BossHit 一次碰撞检测的结果
type BossHit struct {
	Hit               bool    // 是否拦截了这支箭
	Tentacle          int     // 被击中的触手下标，未击中触手为 -1
	TentacleDestroyed bool    // 本次命中斩断了触手
	TentacleX         float64 // 被击中触手的左上角
	TentacleY         float64
	CoreHit           bool // 命中核心
	Defeated          bool // 本次命中击败 Boss
	Blocked           bool // 被身体挡下，无伤害
}

// Boss 海怪
//
// 阶段只会单向推进：入场 -> 触手 -> 核心暴露 -> 击败。
// 触手阶段只能攻击触手，身体会挡住箭；核心暴露阶段只能攻击核心。
type Boss struct {
	components.PositionComponent

	Phase     types.BossPhase
	Tentacles [config.TentacleCount]Tentacle
	Core      components.HealthComponent
	CoreScale float64
	Sway      float64
	Alpha     float64

	clock  float64
	cfg    config.BossConfig
	rng    utils.Random
	events []BossEvent
}

// NewBoss 在场地上方创建 Boss
func NewBoss(cfg *config.GameplayConfig, rng utils.Random) *Boss {
	b := &Boss{
		PositionComponent: components.PositionComponent{
			X: cfg.Field.Width / 2,
			Y: cfg.Boss.EntryY,
		},
		Phase:     types.BossEntering,
		Core:      components.NewHealth(cfg.Boss.CoreHP),
		CoreScale: 1,
		Alpha:     1,
		cfg:       cfg.Boss,
		rng:       rng,
	}

	for i := range b.Tentacles {
		b.Tentacles[i] = Tentacle{
			HealthComponent: components.NewHealth(cfg.Boss.TentacleHP),
			OffsetX:         b.tentacleBaseX(i),
			OffsetY:         50 + rng.Float64()*50,
			Width:           cfg.Boss.TentacleWidth,
			Height:          cfg.Boss.TentacleHeight,
		}
	}

	return b
}

func (b *Boss) tentacleBaseX(i int) float64 {
	return (float64(i) - float64(config.TentacleCount-1)/2) * b.cfg.TentacleSpacing
}

// Advance 推进 Boss 的阶段逻辑与动画
func (b *Boss) Advance(dt float64) {
	b.clock += bossClockRate * dt

	switch b.Phase {
	case types.BossEntering:
		b.Y += b.cfg.EntrySpeed * dt
		if b.Y >= b.cfg.TargetY {
			b.Phase = types.BossEngaged
			b.events = append(b.events, BossArrived)
		}

	case types.BossEngaged:
		b.Sway = math.Sin(b.clock*0.5) * bossSwayAmplitude
		for i := range b.Tentacles {
			t := &b.Tentacles[i]
			if t.Dead {
				continue
			}
			fi := float64(i)
			t.OffsetY = tentacleBaseOffsetY + math.Sin(b.clock+fi*1.5)*tentacleSwingY
			t.OffsetX = b.tentacleBaseX(i) + math.Cos(b.clock*2+fi)*tentacleSwingX
		}

		if b.TentaclesRemaining() == 0 {
			b.Phase = types.BossCoreExposed
			b.events = append(b.events, BossCoreExposed)
		}

	case types.BossCoreExposed:
		b.CoreScale = 1 + math.Sin(b.clock*corePulseRate)*corePulseAmplitude
		if utils.Chance(b.rng, b.cfg.TremorChance) {
			b.events = append(b.events, BossTremor)
		}

	case types.BossDefeated:
		b.Y += b.cfg.DriftSpeed * dt
		b.Alpha = math.Max(0, b.Alpha-b.cfg.FadeRate*dt)
	}
}

// IsAlive Boss 在整个 Boss 战期间由会话持有，击败后仍保留用于谢幕动画
func (b *Boss) IsAlive() bool {
	return true
}

// DrainEvents 取出并清空 Advance 产生的事件
func (b *Boss) DrainEvents() []BossEvent {
	events := b.events
	b.events = nil
	return events
}

// TentaclesRemaining 存活触手数量
func (b *Boss) TentaclesRemaining() int {
	n := 0
	for i := range b.Tentacles {
		if !b.Tentacles[i].Dead {
			n++
		}
	}
	return n
}

// Interactive 是否还能被攻击
func (b *Boss) Interactive() bool {
	return b.Phase != types.BossDefeated
}

// CheckCollision 检测一支箭与 Boss 的碰撞并结算伤害
//
// 触手阶段先逐一检测触手矩形，全部未命中时再检测身体圆形（只拦截不造成伤害）；
// 核心暴露阶段只检测核心圆形。入场与击败阶段不拦截。
func (b *Boss) CheckCollision(p *Projectile) BossHit {
	hit := BossHit{Tentacle: -1}

	switch b.Phase {
	case types.BossEngaged:
		for i := range b.Tentacles {
			t := &b.Tentacles[i]
			if t.Dead {
				continue
			}

			left := b.X + t.OffsetX - t.Width/2
			top := b.Y + t.OffsetY
			if !utils.PointInRect(p.X, p.Y, left, top, t.Width, t.Height) {
				continue
			}

			damage := p.Damage
			if p.IsBeam() {
				damage = b.cfg.BeamTentacleDamage
			}
			if t.TakeDamage(damage) {
				t.CurrentHealth = 0
				t.Dead = true
				hit.TentacleDestroyed = true
			}

			hit.Hit = true
			hit.Tentacle = i
			hit.TentacleX = left
			hit.TentacleY = top
			return hit
		}

		if utils.WithinRadius(p.X, p.Y, b.X, b.Y, b.cfg.BodyRadius) {
			hit.Hit = true
			hit.Blocked = true
		}

	case types.BossCoreExposed:
		if !utils.WithinRadius(p.X, p.Y, b.X, b.Y, b.cfg.CoreRadius) {
			return hit
		}

		damage := p.Damage
		if p.IsBeam() {
			damage = b.cfg.BeamCoreDamage
		}

		hit.Hit = true
		hit.CoreHit = true
		if b.Core.TakeDamage(damage) {
			b.Core.CurrentHealth = 0
			b.Phase = types.BossDefeated
			hit.Defeated = true
		}
	}

	return hit
}
