package scenes

import (
	"image/color"
	"math"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	colorSea         = "#001F3F"
	colorFeverSea    = "#330000"
	colorBossBody    = "#800080"
	colorBossExposed = "#400040"
	colorCoreGlint   = "#FFDDDD"
	colorBowNormal   = "#85144B"
	colorBowFever    = "#FF4136"
	colorBowString   = "#DDDDDD"
	colorSpread      = "#0074D9"
	colorBeam        = "#F012BE"

	coreDrawRadius = 30 // 核心绘制半径，命中判定用 CoreRadius
	bowRadius      = 30
	arrowLength    = 20
	beamLength     = 1000
)

// drawBackground 海水背景，狂热时变红
func (s *GameScene) drawBackground(screen *ebiten.Image, snap game.Snapshot) {
	if snap.HUD.Fever {
		screen.Fill(s.rgba(colorFeverSea))
		return
	}
	screen.Fill(s.rgba(colorSea))
}

// drawBoss 绘制 Boss：触手阶段显示触手，核心暴露后显示脉动的核心
func (s *GameScene) drawBoss(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	b := snap.Boss
	if b == nil {
		return
	}

	x, y := float32(b.X)+dx, float32(b.Y)+dy
	alpha := b.Alpha

	if b.Phase == types.BossEngaged {
		shadow := color.NRGBA{A: uint8(77 * alpha)}
		for _, t := range b.Tentacles {
			if t.Dead {
				continue
			}
			// 触手越残血越暗
			red := color.NRGBA{R: uint8(255 * t.HealthRatio), A: uint8(255 * alpha)}
			tx, ty := float32(t.X)+dx, float32(t.Y)+dy
			vector.DrawFilledRect(screen, tx, ty, float32(t.Width), float32(t.Height), red, true)

			cx := tx + float32(t.Width)/2
			vector.DrawFilledCircle(screen, cx, ty+20, 10, shadow, true)
			vector.DrawFilledCircle(screen, cx, ty+60, 8, shadow, true)
		}
	}

	body := colorBossBody
	if b.Phase == types.BossCoreExposed {
		body = colorBossExposed
	}
	vector.DrawFilledCircle(screen, x, y, float32(b.BodyRadius), fade(s.rgba(body), alpha), true)

	switch b.Phase {
	case types.BossCoreExposed:
		r := float32(coreDrawRadius * b.CoreScale)
		vector.DrawFilledCircle(screen, x, y, r+6, fade(s.rgba(game.ColorAlert), 0.3), true)
		vector.DrawFilledCircle(screen, x, y, r, s.rgba(game.ColorAlert), true)
		vector.DrawFilledCircle(screen, x-10*float32(b.CoreScale), y-10*float32(b.CoreScale), 5, s.rgba(colorCoreGlint), true)

		// 核心血条
		w := float32(b.BodyRadius * 2)
		vector.DrawFilledRect(screen, x-w/2, y-float32(b.BodyRadius)-14, w, 6, color.NRGBA{A: 160}, true)
		vector.DrawFilledRect(screen, x-w/2, y-float32(b.BodyRadius)-14, w*float32(b.CoreRatio), 6, s.rgba(game.ColorAlert), true)
	case types.BossDefeated:
	default:
		eye := fade(s.rgba(game.ColorYellow), alpha)
		vector.DrawFilledCircle(screen, x-20, y-10, 8, eye, true)
		vector.DrawFilledCircle(screen, x+20, y-10, 8, eye, true)
	}
}

// drawFish 绘制鱼：椭圆身体、尾巴和眼睛；受伤后身体变白
func (s *GameScene) drawFish(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	for _, f := range snap.Fish {
		x, y := float32(f.X)+dx, float32(f.Y)+dy
		r := float32(f.Radius)
		dir := float32(1)
		if f.Facing < 0 {
			dir = -1
		}

		body := s.rgba(f.Color)
		if f.Wounded {
			body = s.rgba(game.ColorWhite)
		}

		if f.Kind == types.FishKindHazard {
			for i := 0; i < 8; i++ {
				a := float64(i) * math.Pi / 4
				sx, sy := float32(math.Cos(a)), float32(math.Sin(a))
				vector.StrokeLine(screen, x+sx*r, y+sy*r, x+sx*(r+6), y+sy*(r+6), 3, body, true)
			}
			vector.DrawFilledCircle(screen, x, y, r, body, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, r, body, true)
			vector.DrawFilledCircle(screen, x-dir*r*0.5, y, r*0.85, body, true)
			vector.DrawFilledCircle(screen, x+dir*r*0.5, y, r*0.85, body, true)

			tailX := x - dir*r*1.5
			endX := x - dir*r*2.2
			vector.StrokeLine(screen, tailX, y, endX, y-r*0.6, r*0.4, body, true)
			vector.StrokeLine(screen, tailX, y, endX, y+r*0.6, r*0.4, body, true)
		}

		ex, ey := x+dir*r*0.8, y-r*0.3
		vector.DrawFilledCircle(screen, ex, ey, r*0.3, s.rgba(game.ColorWhite), true)
		vector.DrawFilledCircle(screen, ex+dir*r*0.1, ey, r*0.1, color.Black, true)
	}
}

// drawBubbles 绘制道具气泡，中间标注道具首字母
func (s *GameScene) drawBubbles(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	for _, b := range snap.Bubbles {
		x, y := float32(b.X)+dx, float32(b.Y)+dy
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), color.NRGBA{R: 255, G: 255, B: 255, A: 51}, true)
		vector.StrokeCircle(screen, x, y, float32(b.Radius), 2, s.rgba(b.Color), true)

		label := "S"
		if b.PowerUp == types.PowerUpBeam {
			label = "L"
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(float64(x), float64(y))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(s.rgba(game.ColorWhite))
		text.Draw(screen, label, s.face, op)
	}
}

// drawProjectiles 绘制箭和激光
func (s *GameScene) drawProjectiles(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	for _, p := range snap.Projectiles {
		x, y := float32(p.X)+dx, float32(p.Y)+dy
		cos, sin := float32(math.Cos(p.Angle)), float32(math.Sin(p.Angle))

		if p.Kind == types.ProjectileBeam {
			x0, y0 := x-cos*beamLength, y-sin*beamLength
			x1, y1 := x+cos*beamLength, y+sin*beamLength
			vector.StrokeLine(screen, x0, y0, x1, y1, 10, s.rgba(colorBeam), true)
			vector.StrokeLine(screen, x0, y0, x1, y1, 4, s.rgba(game.ColorWhite), true)
			continue
		}

		shaft := s.rgba(game.ColorWhite)
		head := s.rgba(game.ColorRed)
		if snap.HUD.Fever || p.Powered {
			shaft = s.rgba(game.ColorYellow)
		}
		if p.Powered {
			head = s.rgba(game.ColorOrange)
		}

		half := float32(arrowLength / 2)
		vector.StrokeLine(screen, x-cos*half, y-sin*half, x+cos*half, y+sin*half, 4, shaft, true)
		vector.StrokeLine(screen, x+cos*half, y+sin*half, x+cos*(half+5), y+sin*(half+5), 6, head, true)
	}
}

// drawLauncher 绘制弓、弓弦、蓄力光圈和轨迹预览
func (s *GameScene) drawLauncher(screen *ebiten.Image, snap game.Snapshot, dx, dy float32) {
	l := snap.Launcher
	x, y := float32(l.X)+dx, float32(l.Y)+dy

	for i := 0; i+1 < len(l.Trajectory); i += 2 {
		pt := l.Trajectory[i]
		vector.DrawFilledCircle(screen, float32(pt.X)+dx, float32(pt.Y)+dy, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, true)
	}

	bow := colorBowNormal
	switch {
	case l.PowerUp == types.PowerUpSpread:
		bow = colorSpread
	case l.PowerUp == types.PowerUpBeam:
		bow = colorBeam
	case snap.HUD.Fever:
		bow = colorBowFever
	}

	// 弓身是朝向瞄准方向的半圆
	const segments = 12
	for i := 0; i < segments; i++ {
		a0 := l.Angle - math.Pi/2 + math.Pi*float64(i)/segments
		a1 := l.Angle - math.Pi/2 + math.Pi*float64(i+1)/segments
		vector.StrokeLine(screen,
			x+bowRadius*float32(math.Cos(a0)), y+bowRadius*float32(math.Sin(a0)),
			x+bowRadius*float32(math.Cos(a1)), y+bowRadius*float32(math.Sin(a1)),
			5, s.rgba(bow), true)
	}

	pull := float32(0)
	if l.Charging {
		pull = float32(l.ChargeRatio * 20)
	}
	cos, sin := float32(math.Cos(l.Angle)), float32(math.Sin(l.Angle))
	// 弓弦两端在瞄准方向的法线上
	tx, ty := x+sin*bowRadius, y-cos*bowRadius
	bx, by := x-sin*bowRadius, y+cos*bowRadius
	nx, ny := x-cos*pull, y-sin*pull
	str := s.rgba(colorBowString)
	vector.StrokeLine(screen, tx, ty, nx, ny, 2, str, true)
	vector.StrokeLine(screen, nx, ny, bx, by, 2, str, true)

	if l.Charging {
		glow := color.NRGBA{R: 255, G: 255, A: uint8(255 * l.ChargeRatio)}
		vector.DrawFilledCircle(screen, x, y, float32(10+l.ChargeRatio*20), glow, true)
	}
}
