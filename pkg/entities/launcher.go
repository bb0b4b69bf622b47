package entities

import (
	"math"

	"github.com/gonewx/arrowfish/pkg/components"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/types"
)

// ShotProfile 一次射击的参数，由蓄力值决定
type ShotProfile struct {
	Speed  float64
	Pierce int
	Damage int
}

// TrajectoryPoint 轨迹预览中的一个点
type TrajectoryPoint struct {
	X, Y float64
}

// Launcher 弓
//
// 按住时蓄力，松开时按蓄力值发射；狂热模式下按下即以满蓄力发射。
// 持有道具时，发射行为被道具覆盖（三叉戟散射 / 激光）。
type Launcher struct {
	components.PositionComponent

	Angle    float64
	Charge   float64
	Charging bool

	PowerUp      types.PowerUpKind
	PowerUpTimer components.TimerComponent

	cfg          config.LauncherConfig
	powerUpTicks float64
}

// NewLauncher 创建位于场地底部中央、朝正上方的弓
func NewLauncher(cfg *config.GameplayConfig) *Launcher {
	return &Launcher{
		PositionComponent: components.PositionComponent{
			X: cfg.Field.Width / 2,
			Y: cfg.Field.Height - cfg.Field.LauncherOffsetY,
		},
		Angle:        -math.Pi / 2,
		cfg:          cfg.Launcher,
		powerUpTicks: float64(cfg.PowerUpTicks()),
	}
}

// Profile 计算给定蓄力值的射击参数
//
// 速度 = 基础速度 + 蓄力 × 倍率；
// 蓄力超过最大值的 80% 时穿透 1；
// 伤害 = 1 + floor(蓄力 / 40)。
func (l *Launcher) Profile(charge float64) ShotProfile {
	charge = math.Max(0, math.Min(charge, l.cfg.MaxCharge))

	pierce := 0
	if charge > l.cfg.MaxCharge*l.cfg.PierceChargeRatio {
		pierce = 1
	}

	return ShotProfile{
		Speed:  l.cfg.BaseSpeed + charge*l.cfg.SpeedMultiplier,
		Pierce: pierce,
		Damage: 1 + int(math.Floor(charge/l.cfg.DamageBracket)),
	}
}

// MaxProfile 满蓄力的射击参数，狂热模式的速射使用
func (l *Launcher) MaxProfile() ShotProfile {
	return l.Profile(l.cfg.MaxCharge)
}

// Aim 朝指针方向瞄准
// 指向水平线以下时不做平滑限制，而是直接吸附到左或右的水平方向
func (l *Launcher) Aim(x, y float64) {
	angle := math.Atan2(y-l.Y, x-l.X)
	if angle > 0 {
		if angle > math.Pi/2 {
			angle = math.Pi
		} else {
			angle = 0
		}
	}
	l.Angle = angle
}

// StartCharging 开始蓄力
func (l *Launcher) StartCharging(x, y float64) {
	l.Charging = true
	l.Charge = 0
	l.Aim(x, y)
}

// Release 松开弓弦，未在蓄力时返回 nil
func (l *Launcher) Release() []*Projectile {
	if !l.Charging {
		return nil
	}
	l.Charging = false
	shots := l.Fire(l.Profile(l.Charge))
	l.Charge = 0
	return shots
}

// InstantFire 以满蓄力立即发射，不改变蓄力状态
func (l *Launcher) InstantFire() []*Projectile {
	return l.Fire(l.MaxProfile())
}

// Fire 按当前道具发射
//
// 返回:
//   - []*Projectile: 新发射的箭，由调用方加入会话
func (l *Launcher) Fire(shot ShotProfile) []*Projectile {
	switch l.PowerUp {
	case types.PowerUpSpread:
		return []*Projectile{
			l.arrow(l.Angle, shot),
			l.arrow(l.Angle-l.cfg.SpreadAngle, shot),
			l.arrow(l.Angle+l.cfg.SpreadAngle, shot),
		}
	case types.PowerUpBeam:
		return []*Projectile{
			NewBeam(l.X, l.Y, l.Angle, shot.Speed*l.cfg.BeamSpeedFactor,
				l.cfg.BeamPierce, l.cfg.BeamDamage, l.cfg.BeamLifetimeTicks, l.cfg.BeamStepScale),
		}
	default:
		return []*Projectile{l.arrow(l.Angle, shot)}
	}
}

func (l *Launcher) arrow(angle float64, shot ShotProfile) *Projectile {
	return NewProjectile(l.X, l.Y, angle, shot.Speed, shot.Pierce, shot.Damage, l.cfg.Gravity)
}

// ActivatePowerUp 获得道具，重新开始计时
func (l *Launcher) ActivatePowerUp(kind types.PowerUpKind) {
	l.PowerUp = kind
	l.PowerUpTimer.Start(l.powerUpTicks)
}

// Advance 推进蓄力和道具计时
func (l *Launcher) Advance(dt float64) {
	if l.Charging && l.Charge < l.cfg.MaxCharge {
		l.Charge = math.Min(l.Charge+l.cfg.ChargeRate*dt, l.cfg.MaxCharge)
	}

	if l.PowerUp != types.PowerUpNone && l.PowerUpTimer.Tick(dt) {
		l.PowerUp = types.PowerUpNone
	}
}

// IsAlive 弓在整局中始终存在
func (l *Launcher) IsAlive() bool {
	return true
}

// PowerUpProgress 道具剩余比例，无道具时为 0
func (l *Launcher) PowerUpProgress() float64 {
	if l.PowerUp == types.PowerUpNone {
		return 0
	}
	return l.PowerUpTimer.Progress()
}

// ChargeRatio 蓄力比例 [0, 1]
func (l *Launcher) ChargeRatio() float64 {
	return l.Charge / l.cfg.MaxCharge
}

// Trajectory 当前蓄力下普通箭的飞行轨迹预览
// 未蓄力时返回 nil
func (l *Launcher) Trajectory() []TrajectoryPoint {
	if !l.Charging {
		return nil
	}

	speed := l.Profile(l.Charge).Speed
	vx := math.Cos(l.Angle) * speed
	vy := math.Sin(l.Angle) * speed
	x, y := l.X, l.Y

	points := make([]TrajectoryPoint, 0, l.cfg.TrajectorySteps+1)
	points = append(points, TrajectoryPoint{X: x, Y: y})
	for i := 0; i < l.cfg.TrajectorySteps; i++ {
		vy += l.cfg.Gravity
		x += vx
		y += vy
		points = append(points, TrajectoryPoint{X: x, Y: y})
	}
	return points
}
