// Package terminal 提供基于 tcell 的字符界面前端
//
// 场地坐标按比例映射到终端字符格，第 0 行留给分数栏，其余行绘制场地。
package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/types"
)

const (
	hudRows     = 1
	seaColor    = "#001F3F"
	feverColor  = "#330000"
	bossColor   = "#800080"
	launchColor = "#85144B"
)

// Renderer 把快照绘制成字符
type Renderer struct {
	screen tcell.Screen
	styles map[styleKey]tcell.Style
	bg     tcell.Color
}

type styleKey struct {
	fg string
	bg tcell.Color
}

// NewRenderer 创建渲染器，screen 需已 Init
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: make(map[styleKey]tcell.Style),
	}
}

// Viewport 场地到字符格的映射
type Viewport struct {
	Cols, Rows    int // 场地可用的列数和行数（不含分数栏）
	Width, Height float64
}

// ViewportFor 根据屏幕尺寸和快照计算映射
func ViewportFor(screen tcell.Screen, snap game.Snapshot) Viewport {
	cols, rows := screen.Size()
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows-hudRows, 1),
		Width:  snap.Width,
		Height: snap.Height,
	}
}

// Cell 场地坐标对应的字符格，超出场地时 ok 为 false
func (v Viewport) Cell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / v.Width * float64(v.Cols)))
	row = int(math.Floor(y/v.Height*float64(v.Rows))) + hudRows
	ok = col >= 0 && col < v.Cols && row >= hudRows && row < v.Rows+hudRows
	return col, row, ok
}

// Field 字符格中心对应的场地坐标
func (v Viewport) Field(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.Width / float64(v.Cols)
	y = (float64(row-hudRows) + 0.5) * v.Height / float64(v.Rows)
	return x, y
}

// cells 场地长度对应的列数，至少 1
func (v Viewport) cells(length float64) int {
	return max(1, int(math.Round(length/v.Width*float64(v.Cols))))
}

// Draw 清屏并绘制一帧
func (r *Renderer) Draw(snap game.Snapshot) {
	r.bg = tcell.GetColor(seaColor)
	if snap.HUD.Fever {
		r.bg = tcell.GetColor(feverColor)
	}
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.bg))

	v := ViewportFor(r.screen, snap)
	r.drawBoss(v, snap.Boss)
	r.drawFish(v, snap.Fish)
	r.drawBubbles(v, snap.Bubbles)
	r.drawProjectiles(v, snap.Projectiles)
	r.drawEffects(v, snap)
	r.drawLauncher(v, snap.Launcher)
	r.drawHUD(snap)
	r.drawOverlay(v, snap)

	r.screen.Show()
}

// style 前景色为 hex、背景为当前海水色的样式
func (r *Renderer) style(hex string) tcell.Style {
	key := styleKey{fg: hex, bg: r.bg}
	if s, ok := r.styles[key]; ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(tcell.GetColor(hex)).Background(r.bg)
	r.styles[key] = s
	return s
}

// put 在场地坐标处写一个字符
func (r *Renderer) put(v Viewport, x, y float64, ch rune, style tcell.Style) {
	if col, row, ok := v.Cell(x, y); ok {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// text 从 (col, row) 开始写一行字，超出屏幕的部分丢弃
func (r *Renderer) text(col, row int, str string, style tcell.Style) {
	w, h := r.screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, ch := range str {
		if col >= 0 && col < w {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// centered 以场地坐标为中心写一行字
func (r *Renderer) centered(v Viewport, x, y float64, str string, style tcell.Style) {
	col, row, _ := v.Cell(x, y)
	r.text(col-len([]rune(str))/2, row, str, style)
}

func (r *Renderer) drawBoss(v Viewport, b *game.BossView) {
	if b == nil {
		return
	}

	if b.Phase == types.BossEngaged {
		for _, t := range b.Tentacles {
			if t.Dead {
				continue
			}
			ch := '#'
			if t.HealthRatio < 1 {
				ch = '%'
			}
			st := r.style(game.ColorRed)
			for y := t.Y; y < t.Y+t.Height; y += v.Height / float64(v.Rows) {
				for x := t.X; x < t.X+t.Width; x += v.Width / float64(v.Cols) {
					r.put(v, x, y, ch, st)
				}
			}
		}
	}

	body := r.style(bossColor)
	stepX, stepY := v.Width/float64(v.Cols), v.Height/float64(v.Rows)
	for y := b.Y - b.BodyRadius; y <= b.Y+b.BodyRadius; y += stepY {
		for x := b.X - b.BodyRadius; x <= b.X+b.BodyRadius; x += stepX {
			if math.Hypot(x-b.X, y-b.Y) <= b.BodyRadius {
				r.put(v, x, y, 'O', body)
			}
		}
	}

	switch b.Phase {
	case types.BossCoreExposed:
		r.put(v, b.X, b.Y, '@', r.style(game.ColorAlert).Bold(true))
	case types.BossDefeated:
	default:
		r.put(v, b.X-20, b.Y-10, 'o', r.style(game.ColorYellow))
		r.put(v, b.X+20, b.Y-10, 'o', r.style(game.ColorYellow))
	}
}

// fishGlyph 鱼的字符形状，头朝游动方向
func fishGlyph(f game.FishView, width int) string {
	switch f.Kind {
	case types.FishKindHazard:
		return strings.Repeat("*", width)
	case types.FishKindTimeBonus:
		if f.Facing < 0 {
			return "<" + strings.Repeat("+", width-1)
		}
		return strings.Repeat("+", width-1) + ">"
	}
	if width == 1 {
		if f.Facing < 0 {
			return "<"
		}
		return ">"
	}
	if f.Facing < 0 {
		return "<" + strings.Repeat("=", width-1)
	}
	return strings.Repeat("=", width-1) + ">"
}

func (r *Renderer) drawFish(v Viewport, fish []game.FishView) {
	for _, f := range fish {
		style := r.style(f.Color)
		if f.Wounded {
			style = r.style(game.ColorWhite)
		}
		width := v.cells(f.Radius * 3)
		glyph := fishGlyph(f, width)
		col, row, _ := v.Cell(f.X, f.Y)
		r.text(col-width/2, row, glyph, style)
	}
}

func (r *Renderer) drawBubbles(v Viewport, bubbles []game.BubbleView) {
	for _, b := range bubbles {
		label := "(S)"
		if b.PowerUp == types.PowerUpBeam {
			label = "(L)"
		}
		r.centered(v, b.X, b.Y, label, r.style(b.Color))
	}
}

// arrowRune 按角度选择箭的字符
func arrowRune(angle float64) rune {
	// 屏幕坐标 y 向下，先换算成常规角度
	deg := math.Mod(-angle*180/math.Pi+360, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '-'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '|'
	default:
		return '\\'
	}
}

func (r *Renderer) drawProjectiles(v Viewport, projectiles []game.ProjectileView) {
	for _, p := range projectiles {
		if p.Kind == types.ProjectileBeam {
			st := r.style("#F012BE")
			step := math.Min(v.Width/float64(v.Cols), v.Height/float64(v.Rows))
			dx, dy := math.Cos(p.Angle)*step, math.Sin(p.Angle)*step
			for x, y := p.X, p.Y; ; x, y = x+dx, y+dy {
				if _, _, ok := v.Cell(x, y); !ok {
					break
				}
				r.put(v, x, y, '=', st)
			}
			continue
		}

		st := r.style(game.ColorWhite)
		if p.Powered {
			st = r.style(game.ColorOrange)
		}
		r.put(v, p.X, p.Y, arrowRune(p.Angle), st)
	}
}

func (r *Renderer) drawEffects(v Viewport, snap game.Snapshot) {
	for _, p := range snap.Particles {
		r.put(v, p.X, p.Y, '.', r.style(p.Color))
	}
	ink := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	for _, i := range snap.Inks {
		radius := 40 * i.Scale
		stepX, stepY := v.Width/float64(v.Cols), v.Height/float64(v.Rows)
		for y := i.Y - radius; y <= i.Y+radius; y += stepY {
			for x := i.X - radius; x <= i.X+radius; x += stepX {
				if math.Hypot(x-i.X, y-i.Y) <= radius {
					r.put(v, x, y, ' ', ink)
				}
			}
		}
	}
	for _, t := range snap.Texts {
		r.centered(v, t.X, t.Y, t.Text, r.style(t.Color).Bold(true))
	}
}

func (r *Renderer) drawLauncher(v Viewport, l game.LauncherView) {
	dot := r.style(game.ColorGrey)
	for i, pt := range l.Trajectory {
		if i%2 == 0 {
			r.put(v, pt.X, pt.Y, '·', dot)
		}
	}
	st := r.style(launchColor).Bold(true)
	if l.Charging {
		st = r.style(game.ColorYellow).Bold(true)
	}
	r.put(v, l.X, l.Y, 'A', st)
}

// HUDLine 分数栏文字
func HUDLine(h game.HUD) string {
	line := fmt.Sprintf("SCORE: %d  TIME: %d", h.Score, h.TimeLeft)
	if h.Combo > 1 || h.Fever {
		line += fmt.Sprintf("  COMBO x%d", h.Combo)
	}
	if h.FeverBarVisible {
		line += "  " + h.FeverBarLabel
	}
	return line
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	w, _ := r.screen.Size()
	bar := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for col := 0; col < w; col++ {
		r.screen.SetContent(col, 0, ' ', nil, bar)
	}
	if snap.HUD.Fever {
		bar = bar.Foreground(tcell.GetColor(game.ColorRed)).Bold(true)
	}
	r.text(0, 0, HUDLine(snap.HUD), bar)
}

func (r *Renderer) drawOverlay(v Viewport, snap game.Snapshot) {
	var lines []string
	switch snap.Phase {
	case game.PhaseReady:
		lines = []string{"ARROW FISH", "click to start, drag to aim, release to shoot", "q: quit"}
	case game.PhaseOver:
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("Final Score: %d  Max Combo: %d", snap.HUD.Score, snap.HUD.MaxCombo),
			"click or r: play again, q: quit",
		}
	default:
		return
	}

	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	top := hudRows + v.Rows/2 - len(lines)/2
	for i, line := range lines {
		r.text(v.Cols/2-len(line)/2, top+i, line, st)
	}
}
