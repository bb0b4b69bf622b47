package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// 鱼的运动常量
const (
	fishWobbleRate  = 0.1
	wobbleAmplitude = 0.5
)

// Fish 鱼
// 水平匀速游动并上下摆动，游出对侧边界后移除
type Fish struct {
	components.PositionComponent
	components.VelocityComponent
	components.HealthComponent
	Wobble components.WobbleComponent

	Type   config.FishTypeConfig
	Kind   types.FishKind
	Radius float64
	Score  int
	Facing float64 // 1 向右，-1 向左

	dead       bool
	knockback  float64
	fieldWidth float64
	margin     float64
}

// NewFish 在指定位置以指定水平速度创建鱼
func NewFish(def config.FishTypeConfig, x, y, vx float64, cfg *config.GameplayConfig) *Fish {
	facing := 1.0
	if vx < 0 {
		facing = -1
	}
	return &Fish{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		VelocityComponent: components.VelocityComponent{VX: vx},
		HealthComponent:   components.NewHealth(def.HP),
		Wobble:            components.WobbleComponent{Rate: fishWobbleRate, Amplitude: wobbleAmplitude},
		Type:              def,
		Kind:              def.Kind(),
		Radius:            def.Radius,
		Score:             def.Score,
		Facing:            facing,
		knockback:         cfg.Scoring.Knockback,
		fieldWidth:        cfg.Field.Width,
		margin:            cfg.Field.DespawnMargin,
	}
}

// SpawnFish 从随机一侧边缘生成鱼
//
// 参数:
//   - def: 鱼的类型定义
//   - rng: 随机源
//   - speedMultiplier: 当前阶段的速度倍率（后期加速、狂热减速）
//   - cfg: 玩法配置
func SpawnFish(def config.FishTypeConfig, rng utils.Random, speedMultiplier float64, cfg *config.GameplayConfig) *Fish {
	fromLeft := rng.Float64() > 0.5
	y := rng.Float64() * cfg.Field.Height * cfg.Spawn.FishHeightRatio

	jitter := cfg.Spawn.SpeedJitter
	speed := def.Speed * speedMultiplier * (1 - jitter + rng.Float64()*jitter*2)

	x, vx := -def.Radius, speed
	if !fromLeft {
		x, vx = cfg.Field.Width+def.Radius, -speed
	}

	f := NewFish(def, x, y, vx, cfg)
	f.Wobble.Phase = rng.Float64() * math.Pi * 2
	return f
}

func (f *Fish) Advance(dt float64) {
	f.X += f.VX * dt
	f.Y += f.Wobble.Step(dt)

	if (f.VX > 0 && f.X > f.fieldWidth+f.margin) || (f.VX < 0 && f.X < -f.margin) {
		f.dead = true
	}
}

func (f *Fish) IsAlive() bool {
	return !f.dead
}

// Kill 直接击杀（炸弹波及），不经过伤害计算
func (f *Fish) Kill() {
	f.dead = true
}

// Hit 造成伤害
//
// 返回:
//   - bool: true 表示本次击杀；未击杀时向游动反方向击退。已死亡的鱼忽略伤害并返回 false
func (f *Fish) Hit(damage int) bool {
	if f.dead {
		return false
	}

	if f.TakeDamage(damage) {
		f.CurrentHealth = 0
		f.dead = true
		return true
	}

	if f.VX > 0 {
		f.X -= f.knockback
	} else {
		f.X += f.knockback
	}
	return false
}

// Wounded 是否受过伤，渲染时改变颜色
func (f *Fish) Wounded() bool {
	return f.CurrentHealth < f.MaxHealth
}
