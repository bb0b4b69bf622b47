package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// Projectile 箭或激光
//
// 普通箭受重力影响，每帧根据速度重新计算朝向；
// 激光沿发射方向直线前进，存活固定帧数后消失。
type Projectile struct {
	components.PositionComponent
	components.VelocityComponent

	Angle  float64
	Kind   types.ProjectileKind
	Pierce int // 剩余可额外命中的目标数
	Damage int
	Life   components.LifetimeComponent // 仅激光使用，以帧计
	HasHit bool

	dead      bool
	gravity   float64
	stepScale float64
}

// NewProjectile 创建普通箭
//
// 参数:
//   - x, y: 发射位置
//   - angle: 发射角（弧度，屏幕坐标系，向上为负）
//   - speed: 初速度（每帧像素）
//   - pierce: 穿透数
//   - damage: 伤害
//   - gravity: 每帧竖直加速度
func NewProjectile(x, y, angle, speed float64, pierce, damage int, gravity float64) *Projectile {
	if pierce < 0 {
		pierce = 0
	}
	return &Projectile{
		PositionComponent: components.PositionComponent{X: x, Y: y},
		VelocityComponent: components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		},
		Angle:   angle,
		Kind:    types.ProjectileStandard,
		Pierce:  pierce,
		Damage:  damage,
		gravity: gravity,
	}
}

// NewBeam 创建激光
// stepScale 为每帧移动的速度倍数，lifetimeTicks 为存活帧数
func NewBeam(x, y, angle, speed float64, pierce, damage, lifetimeTicks int, stepScale float64) *Projectile {
	p := NewProjectile(x, y, angle, speed, pierce, damage, 0)
	p.Kind = types.ProjectileBeam
	p.stepScale = stepScale
	p.Life = components.LifetimeComponent{Remaining: float64(lifetimeTicks), Rate: 1}
	return p
}

// IsBeam 是否为激光
func (p *Projectile) IsBeam() bool {
	return p.Kind == types.ProjectileBeam
}

func (p *Projectile) Advance(dt float64) {
	if p.IsBeam() {
		p.X += p.VX * p.stepScale * dt
		p.Y += p.VY * p.stepScale * dt
		if p.Life.Tick(dt) {
			p.dead = true
		}
		return
	}

	p.VY += p.gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Angle = math.Atan2(p.VY, p.VX)
}

func (p *Projectile) IsAlive() bool {
	return !p.dead
}

// Kill 标记为死亡，由集合压缩时移除
func (p *Projectile) Kill() {
	p.dead = true
}

// Strikes 判断是否击中以 (tx, ty) 为圆心、半径 radius 的目标
//
// 激光：将目标变换到激光的局部坐标系，目标在前方且侧向距离小于 radius+tolerance；
// 普通箭：箭头与圆心的距离小于 radius+tolerance。
func (p *Projectile) Strikes(tx, ty, radius, tolerance float64) bool {
	reach := radius + tolerance
	if p.IsBeam() {
		return utils.RayStrikes(p.X, p.Y, p.Angle, tx, ty, reach)
	}
	return utils.WithinRadius(p.X, p.Y, tx, ty, reach)
}

// OutOfBounds 是否飞出左右边界或下边界（上方不限）
func (p *Projectile) OutOfBounds(width, height float64) bool {
	return p.X < 0 || p.X > width || p.Y > height
}
