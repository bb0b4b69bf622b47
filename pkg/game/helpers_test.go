package game

import (
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/types"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// newPlayingSession 创建已开局的会话
func newPlayingSession() *Session {
	s := NewSession(config.DefaultGameplayConfig(), utils.NewRandom(42), nil)
	s.Start()
	return s
}

// addFish 在指定位置放入一条静止的鱼
func addFish(s *Session, id int, x, y float64) *entities.Fish {
	for _, def := range s.Config.FishTypes {
		if def.ID == id {
			f := entities.NewFish(def, x, y, 0, s.Config)
			s.Fish.Add(f)
			return f
		}
	}
	panic("unknown fish id")
}

// forceBoss 直接放入处于指定阶段的 Boss
func forceBoss(s *Session, phase types.BossPhase) *entities.Boss {
	s.BossActive = true
	s.Boss = entities.NewBoss(s.Config, s.Rand)
	s.Boss.Phase = phase
	return s.Boss
}
