package components

// PositionComponent 实体在游戏区域中的位置（逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每帧位移
type VelocityComponent struct {
	VX float64
	VY float64
}
