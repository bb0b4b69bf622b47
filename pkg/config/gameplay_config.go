package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/gonewx/arrowfish/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed default_gameplay.yaml
var defaultGameplayYAML []byte

// TentacleCount Boss 触手数量固定为 4，不可配置
const TentacleCount = 4

// GameplayConfig 射鱼玩法的全部数值配置
type GameplayConfig struct {
	Field     FieldConfig         `yaml:"field"`
	Session   SessionConfig       `yaml:"session"`
	Launcher  LauncherConfig      `yaml:"launcher"`
	Scoring   ScoringConfig       `yaml:"scoring"`
	Spawn     SpawnConfig         `yaml:"spawn"`
	Fever     FeverConfig         `yaml:"fever"`
	PowerUp   PowerUpConfig       `yaml:"powerUp"`
	Collision CollisionConfig     `yaml:"collision"`
	Boss      BossConfig          `yaml:"boss"`
	FishTypes []FishTypeConfig    `yaml:"fishTypes"`
	PowerUps  []PowerUpTypeConfig `yaml:"powerUps"`
}

// FieldConfig 游戏区域尺寸（逻辑像素）
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	LauncherOffsetY float64 `yaml:"launcherOffsetY"` // 弓距底边的距离
	DespawnMargin   float64 `yaml:"despawnMargin"`   // 游出屏幕多远后移除
}

// SessionConfig 单局时长
type SessionConfig struct {
	DurationSeconds int `yaml:"durationSeconds"`
	TicksPerSecond  int `yaml:"ticksPerSecond"`
}

// LauncherConfig 弓与箭的物理参数（速度、重力均以"每帧"计）
type LauncherConfig struct {
	MaxCharge         float64 `yaml:"maxCharge"`
	ChargeRate        float64 `yaml:"chargeRate"`
	BaseSpeed         float64 `yaml:"baseSpeed"`
	SpeedMultiplier   float64 `yaml:"speedMultiplier"`
	Gravity           float64 `yaml:"gravity"`
	PierceChargeRatio float64 `yaml:"pierceChargeRatio"`
	DamageBracket     float64 `yaml:"damageBracket"`
	SpreadAngle       float64 `yaml:"spreadAngle"`       // 散射两侧箭的偏角（弧度）
	BeamSpeedFactor   float64 `yaml:"beamSpeedFactor"`   // 激光速度倍数
	BeamStepScale     float64 `yaml:"beamStepScale"`     // 激光每帧移动的速度倍数
	BeamPierce        int     `yaml:"beamPierce"`        // 激光穿透数（视为无限）
	BeamDamage        int     `yaml:"beamDamage"`        // 激光对鱼的伤害
	BeamLifetimeTicks int     `yaml:"beamLifetimeTicks"` // 激光存活帧数
	TrajectorySteps   int     `yaml:"trajectorySteps"`   // 蓄力时预览轨迹的步数
}

// ScoringConfig 计分相关
type ScoringConfig struct {
	ComboStep         float64 `yaml:"comboStep"`         // 每级连击的加成比例
	TimeBonusSeconds  int     `yaml:"timeBonusSeconds"`  // 时间鱼奖励的秒数
	HazardBlastRadius float64 `yaml:"hazardBlastRadius"` // 炸弹河豚爆炸半径
	Knockback         float64 `yaml:"knockback"`         // 未击杀时的击退距离
}

// SpawnIntervalStep 剩余时间 <= AtOrBelow 秒时使用的生成间隔（帧）
type SpawnIntervalStep struct {
	AtOrBelow int `yaml:"atOrBelow"`
	Interval  int `yaml:"interval"`
}

// SpawnConfig 鱼和气泡的生成节奏
type SpawnConfig struct {
	InitialInterval       int                 `yaml:"initialInterval"`
	FeverInterval         int                 `yaml:"feverInterval"`
	IntervalSteps         []SpawnIntervalStep `yaml:"intervalSteps"`
	LateSpeedBelowSeconds int                 `yaml:"lateSpeedBelowSeconds"`
	LateSpeedMultiplier   float64             `yaml:"lateSpeedMultiplier"`
	FeverSpeedMultiplier  float64             `yaml:"feverSpeedMultiplier"`
	SpeedJitter           float64             `yaml:"speedJitter"`
	FishHeightRatio       float64             `yaml:"fishHeightRatio"`
	BubbleInterval        int                 `yaml:"bubbleInterval"`
	BubbleChance          float64             `yaml:"bubbleChance"`
	BubbleHeightRatio     float64             `yaml:"bubbleHeightRatio"`
	BubbleSpeed           float64             `yaml:"bubbleSpeed"`
	BubbleRadius          float64             `yaml:"bubbleRadius"`
}

// FeverConfig 狂热模式
type FeverConfig struct {
	Threshold            int `yaml:"threshold"`
	DurationSeconds      int `yaml:"durationSeconds"`
	BossDurationSeconds  int `yaml:"bossDurationSeconds"`  // 核心暴露时强制进入的狂热时长（视为无限）
	BossRemainingSeconds int `yaml:"bossRemainingSeconds"` // 核心暴露时重置的剩余时间
}

// PowerUpConfig 道具持续时间
type PowerUpConfig struct {
	DurationSeconds int `yaml:"durationSeconds"`
}

// CollisionConfig 命中判定的容差
type CollisionConfig struct {
	FishTolerance   float64 `yaml:"fishTolerance"`
	BubbleTolerance float64 `yaml:"bubbleTolerance"`
}

// BossConfig 海怪 Boss
type BossConfig struct {
	SpawnAtSeconds         int     `yaml:"spawnAtSeconds"`
	EntryY                 float64 `yaml:"entryY"`
	TargetY                float64 `yaml:"targetY"`
	EntrySpeed             float64 `yaml:"entrySpeed"`
	TentacleHP             int     `yaml:"tentacleHP"`
	TentacleSpacing        float64 `yaml:"tentacleSpacing"`
	TentacleWidth          float64 `yaml:"tentacleWidth"`
	TentacleHeight         float64 `yaml:"tentacleHeight"`
	CoreHP                 int     `yaml:"coreHP"`
	CoreRadius             float64 `yaml:"coreRadius"`
	BodyRadius             float64 `yaml:"bodyRadius"`
	TentacleBounty         int     `yaml:"tentacleBounty"`
	DefeatBounty           int     `yaml:"defeatBounty"`
	BeamTentacleDamage     int     `yaml:"beamTentacleDamage"`
	BeamCoreDamage         int     `yaml:"beamCoreDamage"`
	ExplosionCount         int     `yaml:"explosionCount"`
	ExplosionIntervalTicks int     `yaml:"explosionIntervalTicks"`
	ExplosionSpread        float64 `yaml:"explosionSpread"`
	EndDelayTicks          int     `yaml:"endDelayTicks"`
	DriftSpeed             float64 `yaml:"driftSpeed"`
	FadeRate               float64 `yaml:"fadeRate"`
	TremorChance           float64 `yaml:"tremorChance"`
}

// FishTypeConfig 一种鱼的定义
type FishTypeConfig struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Color       string  `yaml:"color"`
	Speed       float64 `yaml:"speed"`
	Score       int     `yaml:"score"`
	Radius      float64 `yaml:"radius"`
	SpawnWeight float64 `yaml:"spawnWeight"`
	Effect      string  `yaml:"effect"`
	HP          int     `yaml:"hp"`
}

// Kind 返回解析后的鱼类别，配置已通过校验时不会失败
func (f FishTypeConfig) Kind() types.FishKind {
	kind, _ := types.ParseFishKind(f.Effect)
	return kind
}

// PowerUpTypeConfig 一种道具气泡
type PowerUpTypeConfig struct {
	Type   string `yaml:"type"`
	Color  string `yaml:"color"`
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Kind 返回解析后的道具类型
func (p PowerUpTypeConfig) Kind() types.PowerUpKind {
	kind, _ := types.ParsePowerUpKind(p.Type)
	return kind
}

// PowerUpTicks 道具持续帧数
func (c *GameplayConfig) PowerUpTicks() int {
	return c.PowerUp.DurationSeconds * c.Session.TicksPerSecond
}

// TotalSpawnWeight 所有鱼的生成权重之和
func (c *GameplayConfig) TotalSpawnWeight() float64 {
	total := 0.0
	for _, ft := range c.FishTypes {
		total += ft.SpawnWeight
	}
	return total
}

// PowerUpType 按类型查找道具定义
func (c *GameplayConfig) PowerUpType(kind types.PowerUpKind) (PowerUpTypeConfig, bool) {
	for _, p := range c.PowerUps {
		if p.Kind() == kind {
			return p, true
		}
	}
	return PowerUpTypeConfig{}, false
}

// DefaultGameplayConfig 返回内置的默认配置（每次返回新副本）
func DefaultGameplayConfig() *GameplayConfig {
	var cfg GameplayConfig
	if err := yaml.Unmarshal(defaultGameplayYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded gameplay config is broken: %v", err))
	}
	if err := validateGameplayConfig(&cfg); err != nil {
		panic(fmt.Sprintf("embedded gameplay config is invalid: %v", err))
	}
	return &cfg
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
// 文件中未出现的字段保留默认值
func LoadGameplayConfig(filePath string) (*GameplayConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 数据并覆盖到默认配置之上
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}

	if err := validateGameplayConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// validateGameplayConfig 验证配置的有效性
func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.0fx%.0f", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Session.DurationSeconds <= 0 {
		return fmt.Errorf("session.durationSeconds must be > 0, got %d", cfg.Session.DurationSeconds)
	}
	if cfg.Session.TicksPerSecond <= 0 {
		return fmt.Errorf("session.ticksPerSecond must be > 0, got %d", cfg.Session.TicksPerSecond)
	}

	l := cfg.Launcher
	if l.MaxCharge <= 0 || l.ChargeRate <= 0 {
		return fmt.Errorf("launcher.maxCharge and launcher.chargeRate must be > 0")
	}
	if l.DamageBracket <= 0 {
		return fmt.Errorf("launcher.damageBracket must be > 0, got %v", l.DamageBracket)
	}
	if l.PierceChargeRatio < 0 || l.PierceChargeRatio > 1 {
		return fmt.Errorf("launcher.pierceChargeRatio must be within [0, 1], got %v", l.PierceChargeRatio)
	}
	if l.BeamLifetimeTicks <= 0 {
		return fmt.Errorf("launcher.beamLifetimeTicks must be > 0, got %d", l.BeamLifetimeTicks)
	}
	if l.BeamPierce < 0 {
		return fmt.Errorf("launcher.beamPierce must be >= 0, got %d", l.BeamPierce)
	}

	s := cfg.Spawn
	if s.InitialInterval <= 0 || s.FeverInterval <= 0 || s.BubbleInterval <= 0 {
		return fmt.Errorf("spawn intervals must be > 0")
	}
	for i, step := range s.IntervalSteps {
		if step.Interval <= 0 {
			return fmt.Errorf("spawn.intervalSteps[%d].interval must be > 0, got %d", i, step.Interval)
		}
	}
	if s.BubbleChance < 0 || s.BubbleChance > 1 {
		return fmt.Errorf("spawn.bubbleChance must be within [0, 1], got %v", s.BubbleChance)
	}

	if cfg.Fever.Threshold < 1 {
		return fmt.Errorf("fever.threshold must be >= 1, got %d", cfg.Fever.Threshold)
	}
	if cfg.Fever.DurationSeconds <= 0 {
		return fmt.Errorf("fever.durationSeconds must be > 0, got %d", cfg.Fever.DurationSeconds)
	}

	if cfg.Boss.TentacleHP <= 0 || cfg.Boss.CoreHP <= 0 {
		return fmt.Errorf("boss.tentacleHP and boss.coreHP must be > 0")
	}
	if cfg.Boss.EntrySpeed <= 0 {
		return fmt.Errorf("boss.entrySpeed must be > 0, got %v", cfg.Boss.EntrySpeed)
	}

	if len(cfg.FishTypes) == 0 {
		return fmt.Errorf("fishTypes cannot be empty")
	}
	for _, ft := range cfg.FishTypes {
		if _, err := types.ParseFishKind(ft.Effect); err != nil {
			return fmt.Errorf("fish type %d (%s): %w", ft.ID, ft.Name, err)
		}
		if ft.Radius <= 0 {
			return fmt.Errorf("fish type %d (%s): radius must be > 0", ft.ID, ft.Name)
		}
		if ft.HP <= 0 {
			return fmt.Errorf("fish type %d (%s): hp must be > 0", ft.ID, ft.Name)
		}
		if ft.SpawnWeight < 0 || math.IsNaN(ft.SpawnWeight) {
			return fmt.Errorf("fish type %d (%s): spawnWeight must be >= 0", ft.ID, ft.Name)
		}
	}
	if cfg.TotalSpawnWeight() <= 0 {
		return fmt.Errorf("total fish spawnWeight must be > 0")
	}

	if len(cfg.PowerUps) == 0 {
		return fmt.Errorf("powerUps cannot be empty")
	}
	for _, p := range cfg.PowerUps {
		if _, err := types.ParsePowerUpKind(p.Type); err != nil {
			return err
		}
	}

	return nil
}
