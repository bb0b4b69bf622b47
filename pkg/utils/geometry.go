package utils

import "math"

// PointInRect 判断点是否严格位于矩形内部（左上角 + 宽高）
func PointInRect(px, py, left, top, width, height float64) bool {
	return px > left && px < left+width &&
		py > top && py < top+height
}

// WithinRadius 判断两点距离是否严格小于 radius
func WithinRadius(x1, y1, x2, y2, radius float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy < radius*radius
}

// ToLocalFrame 将目标点变换到以 (ox, oy) 为原点、朝向 angle 的局部坐标系
//
// 返回：
//   - forward: 沿朝向的距离（正值表示在前方）
//   - lateral: 侧向偏移
func ToLocalFrame(ox, oy, angle, tx, ty float64) (forward, lateral float64) {
	dx := tx - ox
	dy := ty - oy
	cos := math.Cos(-angle)
	sin := math.Sin(-angle)
	forward = dx*cos - dy*sin
	lateral = dx*sin + dy*cos
	return forward, lateral
}

// RayStrikes 射线判定：目标在射线前方且侧向距离小于 reach
func RayStrikes(ox, oy, angle, tx, ty, reach float64) bool {
	forward, lateral := ToLocalFrame(ox, oy, angle, tx, ty)
	return forward > 0 && math.Abs(lateral) < reach
}
