package utils

import "math"

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值，只在渲染层使用。

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-Clamp01(t), 3)
}

// EaseOutBack 带回弹的缓出，结束前略微超过 1
// 用于连击数字和警告文字的弹出
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = Clamp01(t)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 截断到 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Blink 以 period 帧为周期闪烁，前半周期返回 true
func Blink(frames, period int) bool {
	if period <= 1 {
		return true
	}
	return frames%period < period/2
}
