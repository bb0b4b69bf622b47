package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	particleRadius = 3
	feverBarHeight = 20
	feverBarBottom = 30 // 进度条距离底边
	feverBlink     = 10 // 狂热时进度条闪烁周期（帧）
	hudMargin      = 20
)

// drawParticles 粒子
func (s *GameScene) drawParticles(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	for _, p := range snap.Particles {
		vector.DrawFilledCircle(screen, float32(p.X)+dx, float32(p.Y)+dy, particleRadius, fade(s.rgba(p.Color), p.Alpha), true)
	}
}

// drawInks 墨汁由几团重叠的黑色圆组成，盖在鱼和箭的上面
func (s *GameScene) drawInks(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	blobs := [...]struct{ x, y, r float64 }{
		{0, 0, 40}, {30, 10, 30}, {-20, 30, 25}, {10, -30, 35},
	}
	for _, ink := range snap.Inks {
		clr := color.NRGBA{A: uint8(255 * utils.Clamp01(ink.Alpha))}
		cos, sin := math.Cos(ink.Rotation), math.Sin(ink.Rotation)
		for _, b := range blobs {
			bx := (b.x*cos - b.y*sin) * ink.Scale
			by := (b.x*sin + b.y*cos) * ink.Scale
			vector.DrawFilledCircle(screen, float32(ink.X+bx)+dx, float32(ink.Y+by)+dy, float32(b.r*ink.Scale), clr, true)
		}
	}
}

// drawTexts 飘字
func (s *GameScene) drawTexts(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	for _, t := range snap.Texts {
		s.drawLabel(screen, t.Text, float64(float32(t.X)+dx), float64(float32(t.Y)+dy), 2, s.rgba(t.Color), t.Alpha)
	}
}

// drawCombo 屏幕中央的连击数，狂热时显示 FEVER!
func (s *GameScene) drawCombo(screen *ebiten.Image, snap game.Snapshot) {
	h := snap.HUD
	if h.Combo <= 1 && !h.Fever {
		return
	}

	label := fmt.Sprintf("Combo x%d", h.Combo)
	clr := s.rgba(game.ColorGold)
	if h.Fever {
		label = "FEVER!"
		clr = s.rgba(game.ColorRed)
	}

	scale := 3 * h.ComboScale
	s.drawLabel(screen, label, snap.Width/2, snap.Height/3, scale, clr, 0.8)
}

// drawFeverBar 底部的狂热/道具进度条
func (s *GameScene) drawFeverBar(screen *ebiten.Image, snap game.Snapshot) {
	h := snap.HUD
	if !h.FeverBarVisible || snap.Phase != game.PhasePlaying {
		return
	}

	w := float32(snap.Width * 0.8)
	x := float32(snap.Width)/2 - w/2
	y := float32(snap.Height) - feverBarBottom

	vector.DrawFilledRect(screen, x, y, w, feverBarHeight, color.NRGBA{A: 128}, true)

	fill := s.rgba(game.ColorGold)
	if h.Fever {
		fill = s.rgba(game.ColorRed)
		if !utils.Blink(s.frames, feverBlink) {
			fill = s.rgba(game.ColorYellow)
		}
	}
	vector.DrawFilledRect(screen, x, y, w*float32(utils.Clamp01(h.FeverBar)), feverBarHeight, fill, true)
	vector.StrokeRect(screen, x, y, w, feverBarHeight, 2, s.rgba(game.ColorWhite), true)

	s.drawLabel(screen, h.FeverBarLabel, snap.Width/2, float64(y)+feverBarHeight/2, 1, s.rgba(game.ColorWhite), 1)
}

// drawHUD 左上角分数，右上角剩余时间
func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	h := snap.HUD

	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(s.rgba(game.ColorWhite))
	text.Draw(screen, fmt.Sprintf("SCORE: %d", h.Score), s.face, op)

	timeColor := s.rgba(game.ColorWhite)
	if h.TimeLeft <= 10 {
		timeColor = s.rgba(game.ColorRed)
	}
	op = &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(snap.Width-hudMargin, hudMargin)
	op.PrimaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(timeColor)
	text.Draw(screen, fmt.Sprintf("TIME: %d", h.TimeLeft), s.face, op)
}

// drawOverlay 开局和结算画面
func (s *GameScene) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	if snap.Phase == game.PhasePlaying {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), color.NRGBA{A: 160}, false)

	cx, cy := snap.Width/2, snap.Height/2
	white := s.rgba(game.ColorWhite)
	for _, line := range overlayLines(snap, utils.IsMobile()) {
		s.drawLabel(screen, line.text, cx, cy+line.dy, line.scale, white, 1)
	}
}

type overlayLine struct {
	text  string
	dy    float64
	scale float64
}

// overlayLines 开局/结算画面的文字，移动端提示“点击”
func overlayLines(snap game.Snapshot, mobile bool) []overlayLine {
	verb := "Click"
	if mobile {
		verb = "Tap"
	}

	if snap.Phase == game.PhaseOver {
		return []overlayLine{
			{"GAME OVER", -60, 4},
			{fmt.Sprintf("Final Score: %d", snap.HUD.Score), 0, 2},
			{fmt.Sprintf("Max Combo: %d", snap.HUD.MaxCombo), 30, 2},
			{verb + " to play again", 80, 2},
		}
	}
	return []overlayLine{
		{"ARROW FISH", -60, 4},
		{"Hold to charge, release to shoot", 0, 2},
		{verb + " to start", 50, 2},
	}
}

// drawLabel 以 (x, y) 为中心绘制放大的文字
func (s *GameScene) drawLabel(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, s.face, op)
}
