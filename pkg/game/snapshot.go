package game

import (
	"fmt"

	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/types"
)

// ProjectileView 箭的渲染数据
type ProjectileView struct {
	X, Y    float64
	Angle   float64
	Kind    types.ProjectileKind
	Powered bool // 带穿透或额外伤害的强力箭
}

// FishView 鱼的渲染数据
type FishView struct {
	X, Y    float64
	Radius  float64
	Color   string
	Kind    types.FishKind
	Facing  float64
	Wounded bool
}

// BubbleView 道具气泡的渲染数据
type BubbleView struct {
	X, Y    float64
	Radius  float64
	Color   string
	Symbol  string
	PowerUp types.PowerUpKind
}

// TentacleView 触手的渲染数据，坐标为矩形左上角（已包含摆动）
type TentacleView struct {
	X, Y          float64
	Width, Height float64
	HealthRatio   float64
	Dead          bool
}

// BossView Boss 的渲染数据
type BossView struct {
	X, Y       float64 // 已包含摆动
	Phase      types.BossPhase
	Alpha      float64
	CoreScale  float64
	CoreRatio  float64
	BodyRadius float64
	CoreRadius float64
	Tentacles  []TentacleView
}

// ParticleView 粒子
type ParticleView struct {
	X, Y  float64
	Color string
	Alpha float64
}

// TextView 飘字
type TextView struct {
	X, Y  float64
	Text  string
	Color string
	Alpha float64
}

// InkView 墨汁
type InkView struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Alpha    float64
}

// LauncherView 弓
type LauncherView struct {
	X, Y        float64
	Angle       float64
	Charging    bool
	ChargeRatio float64
	PowerUp     types.PowerUpKind
	Trajectory  []entities.TrajectoryPoint
}

// HUD 界面数值
type HUD struct {
	Score      int
	TimeLeft   int
	Combo      int
	MaxCombo   int
	Fever      bool
	ComboScale float64

	FeverBar        float64 // 进度条比例：道具剩余 / 狂热中为 1 / 连击进度
	FeverBarLabel   string
	FeverBarVisible bool // Boss 触手阶段隐藏
}

// Snapshot 一帧的只读快照，交给渲染层使用
// 所有切片都是新分配的副本，渲染层可以自由持有
type Snapshot struct {
	SessionID string
	Phase     Phase
	Width     float64
	Height    float64
	Shake     float64

	Projectiles []ProjectileView
	Fish        []FishView
	Bubbles     []BubbleView
	Boss        *BossView
	Particles   []ParticleView
	Texts       []TextView
	Inks        []InkView
	Launcher    LauncherView
	HUD         HUD
}

// Snapshot 生成当前状态的快照，只包含存活实体
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.ID.String(),
		Phase:     s.Phase,
		Width:     s.Config.Field.Width,
		Height:    s.Config.Field.Height,
		Shake:     s.Shake,
		HUD:       s.hud(),
	}

	for _, p := range s.Projectiles.Items() {
		if !p.IsAlive() {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:       p.X,
			Y:       p.Y,
			Angle:   p.Angle,
			Kind:    p.Kind,
			Powered: p.Pierce > 0 || p.Damage > 1,
		})
	}

	for _, f := range s.Fish.Items() {
		if !f.IsAlive() {
			continue
		}
		snap.Fish = append(snap.Fish, FishView{
			X:       f.X,
			Y:       f.Y,
			Radius:  f.Radius,
			Color:   f.Type.Color,
			Kind:    f.Kind,
			Facing:  f.Facing,
			Wounded: f.Wounded(),
		})
	}

	for _, b := range s.Bubbles.Items() {
		if !b.IsAlive() {
			continue
		}
		snap.Bubbles = append(snap.Bubbles, BubbleView{
			X:       b.X,
			Y:       b.Y,
			Radius:  b.Radius,
			Color:   b.Def.Color,
			Symbol:  b.Def.Symbol,
			PowerUp: b.PowerUp,
		})
	}

	if s.BossActive && s.Boss != nil {
		snap.Boss = s.bossView()
	}

	for _, p := range s.Particles.Items() {
		if p.IsAlive() {
			snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Color: p.Color, Alpha: p.Life.Fraction()})
		}
	}
	for _, t := range s.Texts.Items() {
		if t.IsAlive() {
			snap.Texts = append(snap.Texts, TextView{X: t.X, Y: t.Y, Text: t.Text, Color: t.Color, Alpha: t.Life.Fraction()})
		}
	}
	for _, i := range s.Inks.Items() {
		if i.IsAlive() {
			snap.Inks = append(snap.Inks, InkView{X: i.X, Y: i.Y, Rotation: i.Rotation, Scale: i.Scale, Alpha: i.Life.Fraction() * 0.8})
		}
	}

	l := s.Launcher
	snap.Launcher = LauncherView{
		X:           l.X,
		Y:           l.Y,
		Angle:       l.Angle,
		Charging:    l.Charging,
		ChargeRatio: l.ChargeRatio(),
		PowerUp:     l.PowerUp,
		Trajectory:  l.Trajectory(),
	}

	return snap
}

func (s *Session) bossView() *BossView {
	b := s.Boss
	cfg := s.Config.Boss
	view := &BossView{
		X:          b.X + b.Sway,
		Y:          b.Y,
		Phase:      b.Phase,
		Alpha:      b.Alpha,
		CoreScale:  b.CoreScale,
		CoreRatio:  b.Core.Ratio(),
		BodyRadius: cfg.BodyRadius,
		CoreRadius: cfg.CoreRadius,
	}

	for i := range b.Tentacles {
		t := &b.Tentacles[i]
		view.Tentacles = append(view.Tentacles, TentacleView{
			X:           view.X + t.OffsetX - t.Width/2,
			Y:           b.Y + t.OffsetY,
			Width:       t.Width,
			Height:      t.Height,
			HealthRatio: t.Ratio(),
			Dead:        t.Dead,
		})
	}
	return view
}

// hud 计算界面数值
// 进度条优先显示道具剩余时间，其次狂热，最后是距离狂热的连击进度
func (s *Session) hud() HUD {
	h := HUD{
		Score:           s.Score,
		TimeLeft:        s.TimeLeft,
		Combo:           s.Combo,
		MaxCombo:        s.MaxCombo,
		Fever:           s.FeverActive,
		ComboScale:      s.ComboScale,
		FeverBarVisible: !s.BossIn(types.BossEngaged),
	}

	threshold := s.Config.Fever.Threshold
	switch {
	case s.Launcher.PowerUp != types.PowerUpNone:
		h.FeverBar = s.Launcher.PowerUpProgress()
		name := "LASER"
		if s.Launcher.PowerUp == types.PowerUpSpread {
			name = "SCATTER"
		}
		h.FeverBarLabel = name + " MODE"
	case s.FeverActive:
		h.FeverBar = 1
		h.FeverBarLabel = "FEVER TIME!"
	default:
		h.FeverBar = float64(s.Combo) / float64(threshold)
		if h.FeverBar > 1 {
			h.FeverBar = 1
		}
		h.FeverBarLabel = fmt.Sprintf("FEVER: %d/%d", s.Combo, threshold)
	}

	return h
}
