package systems

import (
	"github.com/gonewx/arrowfish/pkg/entities"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// SpawnSystem 按帧计数生成鱼和道具气泡
//
// Boss 战期间不生成任何东西。
type SpawnSystem struct {
	session *game.Session
	weights []float64
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(s *game.Session) *SpawnSystem {
	weights := make([]float64, len(s.Config.FishTypes))
	for i, ft := range s.Config.FishTypes {
		weights[i] = ft.SpawnWeight
	}
	return &SpawnSystem{
		session: s,
		weights: weights,
	}
}

// Update 每帧调用一次，需在帧计数递增之后
func (sys *SpawnSystem) Update() {
	s := sys.session
	if s.BossActive {
		return
	}

	spawn := s.Config.Spawn
	if s.Frames%spawn.BubbleInterval == 0 && utils.Chance(s.Rand, spawn.BubbleChance) {
		sys.spawnBubble()
	}

	if s.SpawnInterval > 0 && s.Frames%s.SpawnInterval == 0 {
		sys.spawnFish()
	}
}

func (sys *SpawnSystem) spawnBubble() {
	s := sys.session
	if len(s.Config.PowerUps) == 0 {
		return
	}
	def := s.Config.PowerUps[s.Rand.IntN(len(s.Config.PowerUps))]
	s.Bubbles.Add(entities.SpawnBubble(def, s.Rand, s.Config))
}

func (sys *SpawnSystem) spawnFish() {
	s := sys.session
	def := s.Config.FishTypes[utils.ChooseWeighted(s.Rand, sys.weights)]
	s.Fish.Add(entities.SpawnFish(def, s.Rand, sys.SpeedMultiplier(), s.Config))
}

// SpeedMultiplier 当前阶段鱼的速度倍率
// 后期加速，狂热时减速（狂热优先）
func (sys *SpawnSystem) SpeedMultiplier() float64 {
	s := sys.session
	spawn := s.Config.Spawn

	multiplier := 1.0
	if s.TimeLeft < spawn.LateSpeedBelowSeconds {
		multiplier = spawn.LateSpeedMultiplier
	}
	if s.FeverActive {
		multiplier = spawn.FeverSpeedMultiplier
	}
	return multiplier
}
