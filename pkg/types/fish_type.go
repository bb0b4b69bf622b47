// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// FishKind 定义鱼被击杀时触发的效果类别
type FishKind int

const (
	// FishKindNormal 普通鱼：计入连击
	FishKindNormal FishKind = iota
	// FishKindTimeBonus 时间鱼：击杀后延长剩余时间
	FishKindTimeBonus
	// FishKindHazard 炸弹河豚：击杀后清空连击并引爆周围的鱼
	FishKindHazard
)

// String 返回鱼类别的配置名
func (k FishKind) String() string {
	switch k {
	case FishKindNormal:
		return "normal"
	case FishKindTimeBonus:
		return "time"
	case FishKindHazard:
		return "bomb"
	default:
		return "unknown"
	}
}

// ParseFishKind 将配置中的 effect 字段解析为 FishKind
// "hazard" 作为 "bomb" 的别名
func ParseFishKind(s string) (FishKind, error) {
	switch s {
	case "normal", "":
		return FishKindNormal, nil
	case "time":
		return FishKindTimeBonus, nil
	case "bomb", "hazard":
		return FishKindHazard, nil
	}
	return FishKindNormal, fmt.Errorf("unknown fish effect %q", s)
}
