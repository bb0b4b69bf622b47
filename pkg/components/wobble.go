package components

import "math"

// WobbleComponent 正弦摆动
// 鱼和气泡在水平匀速运动的同时上下摆动
type WobbleComponent struct {
	Phase     float64 // 当前相位（弧度）
	Rate      float64 // 每帧相位增量
	Amplitude float64 // 每帧最大纵向位移
}

// Step 推进相位并返回本帧的纵向位移
func (w *WobbleComponent) Step(dt float64) float64 {
	w.Phase += w.Rate * dt
	return math.Sin(w.Phase) * w.Amplitude * dt
}
