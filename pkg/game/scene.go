package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可切换的画面（游戏画面等）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上次更新经过的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Restartable 可选接口，支持在不重建场景的情况下开始新的一局
type Restartable interface {
	Restart()
}
