package game

import (
	"fmt"
	"math"

	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// AwardKill 结算一条被箭击杀的鱼
//
// 炸弹河豚：扣分、清零连击并引爆周围的鱼；
// 其他鱼：计入连击并按连击加成得分，时间鱼额外增加剩余时间。
//
// 返回:
//   - int: 本次击杀直接获得的分数（不含爆炸波及）
func (s *Session) AwardKill(f *entities.Fish) int {
	if f.Kind == types.FishKindHazard {
		s.Score += f.Score
		s.ResetCombo()
		s.FloatText(f.X, f.Y, fmt.Sprintf("%d", f.Score), ColorRed)
		s.Emit(SignalFishKilled, f.X, f.Y, float64(f.Score))
		s.ExplodeHazard(f.X, f.Y)
		return f.Score
	}

	k := s.RegisterCombo()
	points := ComboScore(f.Score, k, s.Config.Scoring.ComboStep)
	s.Score += points

	text := fmt.Sprintf("+%d", points)
	color := ColorWhite
	switch {
	case f.Kind == types.FishKindTimeBonus:
		s.TimeLeft += s.Config.Scoring.TimeBonusSeconds
		text = fmt.Sprintf("+%ds", s.Config.Scoring.TimeBonusSeconds)
		color = ColorGreen
		s.FloatText(f.X, f.Y-20, fmt.Sprintf("+%d", points), ColorWhite)
	case k > 1:
		color = ColorGold
	}
	s.FloatText(f.X, f.Y, text, color)

	s.Emit(SignalFishKilled, f.X, f.Y, float64(points))
	return points
}

// ExplodeHazard 炸弹爆炸：半径内所有存活的鱼直接死亡，各得其基础分的一半（向下取整）
// 被波及的炸弹河豚不会连锁爆炸
//
// 返回:
//   - int: 被波及的鱼数量
func (s *Session) ExplodeHazard(x, y float64) int {
	radius := s.Config.Scoring.HazardBlastRadius
	killed := 0

	for _, f := range s.Fish.Items() {
		if !f.IsAlive() || !utils.WithinRadius(f.X, f.Y, x, y, radius) {
			continue
		}

		f.Kill()
		points := int(math.Floor(float64(f.Score) / 2))
		s.Score += points
		s.Burst(f.X, f.Y, f.Type.Color)
		s.FloatText(f.X, f.Y, fmt.Sprintf("%+d", points), ColorGrey)
		killed++
	}

	s.Emit(SignalHazardExploded, x, y, float64(killed))
	return killed
}
