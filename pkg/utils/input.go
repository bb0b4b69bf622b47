package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEvent 一帧内指针的变化
// 统一鼠标左键和第一个触点
type PointerEvent struct {
	Pressed  bool // 本帧刚按下
	Released bool // 本帧刚松开
	Moved    bool // 位置相对上一帧变化
	Down     bool // 当前是否按住
	X, Y     float64
}

// PointerTracker 逐帧跟踪指针状态
//
// 触摸优先：存在触点时忽略鼠标。触点抬起时 ebiten 不再报告其位置，
// 因此松开事件使用最后一次记录的位置。
type PointerTracker struct {
	down    bool
	touched bool
	x, y    int
	seen    bool
}

// Poll 读取当前帧的鼠标和触摸状态，必须在 ebiten 的 Update 中调用
func (p *PointerTracker) Poll() PointerEvent {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		p.touched = true
		return p.Feed(true, x, y)
	}

	if p.touched {
		p.touched = false
		return p.Feed(false, p.x, p.y)
	}

	x, y := ebiten.CursorPosition()
	return p.Feed(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}

// Feed 以原始状态推进跟踪器，返回与上一帧相比的变化
//
// 参数:
//   - down: 当前是否按住
//   - x, y: 当前指针位置
func (p *PointerTracker) Feed(down bool, x, y int) PointerEvent {
	ev := PointerEvent{
		Pressed:  down && !p.down,
		Released: !down && p.down,
		Moved:    p.seen && (x != p.x || y != p.y),
		Down:     down,
		X:        float64(x),
		Y:        float64(y),
	}

	p.down = down
	p.x, p.y = x, y
	p.seen = true
	return ev
}

// Reset 丢弃跟踪状态，场景切换时调用，避免把上一场景的按住状态带过来
func (p *PointerTracker) Reset() {
	*p = PointerTracker{}
}
