package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

const (
	bubbleWobbleRate = 0.05
	// bubbleSpawnInset 气泡生成位置在边缘外的距离
	bubbleSpawnInset = 30.0
)

// Bubble 道具气泡，被击中后给予弓对应道具
type Bubble struct {
	components.PositionComponent
	components.VelocityComponent
	Wobble components.WobbleComponent

	PowerUp types.PowerUpKind
	Def     config.PowerUpTypeConfig
	Radius  float64

	dead       bool
	fieldWidth float64
	margin     float64
}

// NewBubble 在指定位置创建气泡
func NewBubble(def config.PowerUpTypeConfig, x, y, vx float64, cfg *config.GameplayConfig) *Bubble {
	return &Bubble{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		VelocityComponent: components.VelocityComponent{VX: vx},
		Wobble:            components.WobbleComponent{Rate: bubbleWobbleRate, Amplitude: wobbleAmplitude},
		PowerUp:           def.Kind(),
		Def:               def,
		Radius:            cfg.Spawn.BubbleRadius,
		fieldWidth:        cfg.Field.Width,
		margin:            cfg.Field.DespawnMargin,
	}
}

// SpawnBubble 从随机一侧生成气泡，高度位于场地上半部分
func SpawnBubble(def config.PowerUpTypeConfig, rng utils.Random, cfg *config.GameplayConfig) *Bubble {
	x, vx := -bubbleSpawnInset, cfg.Spawn.BubbleSpeed
	if rng.Float64() <= 0.5 {
		x, vx = cfg.Field.Width+bubbleSpawnInset, -cfg.Spawn.BubbleSpeed
	}
	y := rng.Float64() * cfg.Field.Height * cfg.Spawn.BubbleHeightRatio

	b := NewBubble(def, x, y, vx, cfg)
	b.Wobble.Phase = rng.Float64() * math.Pi * 2
	return b
}

func (b *Bubble) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.Wobble.Step(dt)

	if b.X < -b.margin || b.X > b.fieldWidth+b.margin {
		b.dead = true
	}
}

func (b *Bubble) IsAlive() bool {
	return !b.dead
}

// Pop 被击中后消失
func (b *Bubble) Pop() {
	b.dead = true
}
