package components

// TimerComponent 通用倒计时器
// 用于弓的道具持续时间
type TimerComponent struct {
	Duration  float64 // 总时长（帧）
	Remaining float64 // 剩余时长（帧）
}

// Start 重新开始计时
func (t *TimerComponent) Start(duration float64) {
	t.Duration = duration
	t.Remaining = duration
}

// Tick 推进计时器，返回本次是否刚好到期
func (t *TimerComponent) Tick(dt float64) bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining -= dt
	return t.Remaining <= 0
}

// Active 计时器是否仍在运行
func (t *TimerComponent) Active() bool {
	return t.Remaining > 0
}

// Progress 剩余比例
func (t *TimerComponent) Progress() float64 {
	if t.Duration <= 0 || t.Remaining <= 0 {
		return 0
	}
	return t.Remaining / t.Duration
}
