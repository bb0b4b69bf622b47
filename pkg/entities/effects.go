// Package entities 定义射鱼模拟中的各类实体：弓、箭、鱼、气泡、Boss 与特效
//
// 实体只负责自身的运动与状态，跨实体的结算（计分、连击、狂热）由会话完成。
package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// 特效常量
const (
	// BurstSize 一次爆炸生成的粒子数
	BurstSize = 15
	// particleSpeed 粒子初速度分量的取值范围宽度（-2.5 ~ 2.5）
	particleSpeed = 5.0
	// particleDecay 粒子每帧消耗的生命
	particleDecay = 0.05
	// textDecay 飘字每帧消耗的生命
	textDecay = 0.02
	// textRise 飘字每帧上升距离
	textRise = 1.0
	// inkDecay 墨汁每帧消耗的生命
	inkDecay = 0.005
	// inkGrowth 墨汁每帧放大的比例
	inkGrowth = 0.1
)

// Particle 爆炸粒子
type Particle struct {
	components.PositionComponent
	components.VelocityComponent
	Color string
	Life  components.LifetimeComponent
}

// NewParticle 在 (x, y) 创建一个随机方向飞散的粒子
func NewParticle(rng utils.Random, x, y float64, color string) *Particle {
	return &Particle{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		VelocityComponent: components.VelocityComponent{
			VX: (rng.Float64() - 0.5) * particleSpeed,
			VY: (rng.Float64() - 0.5) * particleSpeed,
		},
		Color: color,
		Life:  components.LifetimeComponent{Remaining: 1.0, Rate: particleDecay},
	}
}

// NewBurst 创建一组爆炸粒子
func NewBurst(rng utils.Random, x, y float64, color string) []*Particle {
	burst := make([]*Particle, BurstSize)
	for i := range burst {
		burst[i] = NewParticle(rng, x, y, color)
	}
	return burst
}

func (p *Particle) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life.Tick(dt)
}

func (p *Particle) IsAlive() bool {
	return !p.Life.Expired()
}

// FloatingText 上浮并淡出的提示文字（得分、"+5s"、"FEVER MODE!" 等）
type FloatingText struct {
	components.PositionComponent
	Text  string
	Color string
	Life  components.LifetimeComponent
}

// NewFloatingText 创建飘字
func NewFloatingText(x, y float64, text, color string) *FloatingText {
	return &FloatingText{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		Text:              text,
		Color:             color,
		Life:              components.LifetimeComponent{Remaining: 1.0, Rate: textDecay},
	}
}

func (t *FloatingText) Advance(dt float64) {
	t.Y -= textRise * dt
	t.Life.Tick(dt)
}

func (t *FloatingText) IsAlive() bool {
	return !t.Life.Expired()
}

// InkSplash 触手被斩断时喷出的墨汁，遮挡视线，持续约 3 秒
type InkSplash struct {
	components.PositionComponent
	Rotation    float64
	Scale       float64
	TargetScale float64
	Life        components.LifetimeComponent
}

// NewInkSplash 创建墨汁，目标缩放在 [1, 2) 之间随机
func NewInkSplash(rng utils.Random, x, y float64) *InkSplash {
	return &InkSplash{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		TargetScale:       1.0 + rng.Float64(),
		Rotation:          rng.Float64() * math.Pi * 2,
		Life:              components.LifetimeComponent{Remaining: 1.0, Rate: inkDecay},
	}
}

func (i *InkSplash) Advance(dt float64) {
	if i.Scale < i.TargetScale {
		i.Scale += inkGrowth * dt
	}
	i.Life.Tick(dt)
}

func (i *InkSplash) IsAlive() bool {
	return !i.Life.Expired()
}
