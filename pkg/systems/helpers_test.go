package systems

import (
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// fixedRandom 总是返回同一个值的随机源
type fixedRandom struct {
	value float64
}

func (r fixedRandom) Float64() float64 { return r.value }

func (r fixedRandom) IntN(n int) int { return int(r.value * float64(n)) }

// newStartedSimulation 创建已开局的模拟
func newStartedSimulation(seed uint64) *Simulation {
	sim := NewSimulation(config.DefaultGameplayConfig(), utils.NewRandom(seed), nil)
	sim.Start()
	return sim
}

// newStartedSession 创建已开局的会话
func newStartedSession(rng utils.Random) *game.Session {
	s := game.NewSession(config.DefaultGameplayConfig(), rng, nil)
	s.Start()
	return s
}

// placeFish 在指定位置放入一条静止的鱼
func placeFish(s *game.Session, id int, x, y float64) *entities.Fish {
	for _, def := range s.Config.FishTypes {
		if def.ID == id {
			f := entities.NewFish(def, x, y, 0, s.Config)
			s.Fish.Add(f)
			return f
		}
	}
	panic("unknown fish id")
}

// placeArrow 在指定位置放入一支静止的普通箭
func placeArrow(s *game.Session, x, y float64, pierce, damage int) *entities.Projectile {
	p := entities.NewProjectile(x, y, -1.5707963267948966, 0, pierce, damage, 0)
	s.Projectiles.Add(p)
	return p
}

// recordSignals 记录所有事件类型
func recordSignals(d *game.Dispatcher) *[]game.SignalKind {
	kinds := &[]game.SignalKind{}
	d.SubscribeAll(game.ListenerFunc(func(s game.Signal) {
		*kinds = append(*kinds, s.Kind)
	}))
	return kinds
}

func countSignal(kinds []game.SignalKind, kind game.SignalKind) int {
	n := 0
	for _, k := range kinds {
		if k == kind {
			n++
		}
	}
	return n
}
