// verify_gameplay 无界面地跑完若干局，检查玩法约束
//
// 每局使用固定种子和自动射手，逐帧检查连击、蓄力、穿透和 Boss 阶段等约束，
// 违反任一约束时以非零状态退出。
//
// 用法：
//
//	go run ./cmd/verify_gameplay -seed 42 -runs 5 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Uint64("seed", 42, "第一局的随机种子，后续每局加 1")
	runs       = flag.Int("runs", 3, "运行局数")
	maxSeconds = flag.Int("max-seconds", 300, "单局最多模拟的秒数，超过视为失败")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置配置）")
)

// runResult 一局的统计
type runResult struct {
	seed      uint64
	score     int
	maxCombo  int
	seconds   int
	signals   map[game.SignalKind]int
	bossSlain bool
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	failed := 0
	for i := 0; i < *runs; i++ {
		res, err := runOnce(cfg, *seed+uint64(i))
		if err != nil {
			failed++
			fmt.Printf("❌ seed=%d: %v\n", res.seed, err)
			continue
		}
		fmt.Printf("✓ seed=%d score=%d maxCombo=%d seconds=%d kills=%d fevers=%d boss=%v\n",
			res.seed, res.score, res.maxCombo, res.seconds,
			res.signals[game.SignalFishKilled], res.signals[game.SignalFeverStarted], res.bossSlain)
	}

	if failed > 0 {
		fmt.Printf("%d/%d runs failed\n", failed, *runs)
		os.Exit(1)
	}
	fmt.Printf("All %d runs passed\n", *runs)
}

// runOnce 用给定种子跑完一局
func runOnce(cfg *config.GameplayConfig, s uint64) (runResult, error) {
	res := runResult{seed: s, signals: make(map[game.SignalKind]int)}

	signals := game.NewDispatcher()
	signals.SubscribeAll(game.ListenerFunc(func(sig game.Signal) {
		res.signals[sig.Kind]++
	}))

	sim := systems.NewSimulation(cfg, utils.NewRandom(s), signals)
	sim.Start()

	pilot := systems.NewAutopilot()
	var checker systems.InvariantChecker
	perSecond := cfg.Session.TicksPerSecond

	for res.seconds = 0; sim.Phase() == game.PhasePlaying; res.seconds++ {
		if res.seconds >= *maxSeconds {
			return res, fmt.Errorf("session still running after %d seconds", *maxSeconds)
		}
		for tick := 0; tick < perSecond && sim.Phase() == game.PhasePlaying; tick++ {
			pilot.Act(sim)
			sim.Tick()
			if err := checker.Check(sim.Session()); err != nil {
				return res, fmt.Errorf("second %d tick %d: %w", res.seconds, tick, err)
			}
		}
		sim.ElapseSecond()
	}

	session := sim.Session()
	res.score = session.Score
	res.maxCombo = session.MaxCombo
	res.bossSlain = res.signals[game.SignalBossDefeated] > 0

	if n := res.signals[game.SignalSessionEnded]; n != 1 {
		return res, fmt.Errorf("expected exactly one session_ended, got %d", n)
	}
	if res.signals[game.SignalBossDefeated] > 1 {
		return res, fmt.Errorf("boss defeated %d times", res.signals[game.SignalBossDefeated])
	}
	log.Printf("[VerifyGameplay] seed=%d finished: %s", s, session)
	return res, nil
}
