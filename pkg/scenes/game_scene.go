// Package scenes 提供 ebiten 前端的场景
//
// 场景只读取模拟的快照进行绘制，并把指针输入转交给模拟，不持有任何玩法状态。
package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GameScene 射鱼主场景
//
// 就绪和结束画面点击任意位置开始/重开，进行中把指针映射为蓄力、瞄准和发射。
// 倒计时由累积的帧时间驱动，每满一秒调用一次 ElapseSecond。
type GameScene struct {
	sim     *systems.Simulation
	pointer utils.PointerTracker
	face    text.Face
	colors  map[string]color.RGBA

	secondTimer float64 // 距离下一次 ElapseSecond 已累积的秒数
	frames      int     // 渲染帧计数，用于闪烁
}

// NewGameScene 创建主场景
//
// 参数:
//   - sim: 已创建（可以尚未开局）的模拟
func NewGameScene(sim *systems.Simulation) *GameScene {
	return &GameScene{
		sim:    sim,
		face:   text.NewGoXFace(basicfont.Face7x13),
		colors: make(map[string]color.RGBA),
	}
}

// Update 更新场景
func (s *GameScene) Update(deltaTime float64) {
	s.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.sim.Phase() != game.PhaseReady {
		s.Restart()
		return
	}

	s.HandlePointer(s.pointer.Poll())
	s.Advance(deltaTime)
}

// HandlePointer 把一帧的指针变化交给模拟
// 非进行中时按下即开始（或重新开始）一局，这次按下不会发射
func (s *GameScene) HandlePointer(ev utils.PointerEvent) {
	switch s.sim.Phase() {
	case game.PhaseReady:
		if ev.Pressed {
			log.Printf("[GameScene] Starting session")
			s.sim.Start()
			s.secondTimer = 0
		}
		return
	case game.PhaseOver:
		if ev.Pressed {
			s.Restart()
		}
		return
	}

	if ev.Pressed {
		s.sim.Press(ev.X, ev.Y)
	} else if ev.Moved {
		s.sim.Move(ev.X, ev.Y)
	}
	if ev.Released {
		s.sim.Release()
	}
}

// Advance 推进一帧模拟并累积倒计时
func (s *GameScene) Advance(deltaTime float64) {
	s.sim.Tick()

	if s.sim.Phase() != game.PhasePlaying {
		s.secondTimer = 0
		return
	}

	s.secondTimer += deltaTime
	for s.secondTimer >= 1 && s.sim.Phase() == game.PhasePlaying {
		s.secondTimer--
		s.sim.ElapseSecond()
	}
}

// Restart 实现 game.Restartable
func (s *GameScene) Restart() {
	log.Printf("[GameScene] Restarting session")
	s.sim.Restart()
	s.pointer.Reset()
	s.secondTimer = 0
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.sim.Snapshot()

	s.drawBackground(screen, snap)

	// 整个世界跟随震动偏移，界面文字不动
	dx, dy := shakeOffset(snap.Shake)
	s.drawBoss(screen, snap, dx, dy)
	s.drawFish(screen, snap, dx, dy)
	s.drawBubbles(screen, snap, dx, dy)
	s.drawProjectiles(screen, snap, dx, dy)
	s.drawParticles(screen, snap, dx, dy)
	s.drawLauncher(screen, snap, dx, dy)
	s.drawInks(screen, snap, dx, dy)
	s.drawTexts(screen, snap, dx, dy)

	s.drawCombo(screen, snap)
	s.drawFeverBar(screen, snap)
	s.drawHUD(screen, snap)
	s.drawOverlay(screen, snap)
}

// shakeOffset 震动强度对应的随机偏移
func shakeOffset(shake float64) (float32, float32) {
	if shake <= 0 {
		return 0, 0
	}
	return float32((rand.Float64() - 0.5) * shake), float32((rand.Float64() - 0.5) * shake)
}

// rgba 解析并缓存十六进制颜色
func (s *GameScene) rgba(hex string) color.RGBA {
	if c, ok := s.colors[hex]; ok {
		return c
	}
	c := utils.MustHexColor(hex)
	s.colors[hex] = c
	return c
}

// fade 按透明度返回非预乘颜色
func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * utils.Clamp01(alpha))}
}
