package components

// LifetimeComponent 倒计时到零即移除的生命周期
// 用于粒子、飘字、墨汁（Remaining 从 1.0 衰减）以及激光（以帧计）
type LifetimeComponent struct {
	Remaining float64 // 剩余生命
	Rate      float64 // 每帧消耗量
}

// Tick 推进生命周期，返回是否已耗尽
func (l *LifetimeComponent) Tick(dt float64) bool {
	l.Remaining -= l.Rate * dt
	return l.Remaining <= 0
}

// Expired 生命是否已耗尽
func (l *LifetimeComponent) Expired() bool {
	return l.Remaining <= 0
}

// Fraction 剩余比例，截断到 [0, 1]，用于透明度
func (l *LifetimeComponent) Fraction() float64 {
	if l.Remaining <= 0 {
		return 0
	}
	if l.Remaining >= 1 {
		return 1
	}
	return l.Remaining
}
