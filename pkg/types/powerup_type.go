package types

import "fmt"

// PowerUpKind 定义气泡携带的道具
type PowerUpKind int

const (
	// PowerUpNone 无道具
	PowerUpNone PowerUpKind = iota
	// PowerUpSpread 三叉戟：一次射出三支箭
	PowerUpSpread
	// PowerUpBeam 激光：直线穿透
	PowerUpBeam
)

// String 返回道具的配置名
func (p PowerUpKind) String() string {
	switch p {
	case PowerUpSpread:
		return "split"
	case PowerUpBeam:
		return "laser"
	default:
		return "none"
	}
}

// ParsePowerUpKind 解析配置中的道具类型
// 同时接受 "spread"/"beam" 两种写法
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	switch s {
	case "split", "spread":
		return PowerUpSpread, nil
	case "laser", "beam":
		return PowerUpBeam, nil
	}
	return PowerUpNone, fmt.Errorf("unknown power-up type %q", s)
}

// ProjectileKind 区分普通箭与激光
type ProjectileKind int

const (
	ProjectileStandard ProjectileKind = iota
	ProjectileBeam
)

func (k ProjectileKind) String() string {
	if k == ProjectileBeam {
		return "laser"
	}
	return "normal"
}
