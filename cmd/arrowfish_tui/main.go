// arrowfish_tui 在终端中运行射鱼小游戏
//
// 鼠标按下蓄力、拖动瞄准、松开发射；r 重新开始，q 或 Esc 退出。
//
// 用法：
//
//	go run ./cmd/arrowfish_tui [-seed 42] [-config path] [-log file] [-mute]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/terminal"
	"github.com/gonewx/arrowfish/pkg/utils"
)

var (
	seed       = flag.Uint64("seed", 0, "随机种子，0 表示按时间生成")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置配置）")
	logPath    = flag.String("log", "", "日志文件路径，终端界面运行时日志不能写到 stdout")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arrowfish_tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	log.Printf("[Terminal] Seed: %d", s)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	signals := game.NewDispatcher()
	signals.Subscribe(game.SignalSessionEnded, game.ListenerFunc(func(sig game.Signal) {
		log.Printf("[Terminal] Session ended with score %.0f", sig.Value)
	}))

	if !*mute {
		cues := terminal.NewSpeakerCues()
		if err := cues.Initialize(); err != nil {
			// 没有音频设备时照常运行
			log.Printf("[Terminal] Audio disabled: %v", err)
		} else {
			defer cues.Close()
			signals.SubscribeAll(cues)
		}
	}

	sim := systems.NewSimulation(cfg, utils.NewRandom(s), signals)
	controller := terminal.NewController(sim, screen, cfg.Session.TicksPerSecond)
	renderer := terminal.NewRenderer(screen)

	// tcell 的 PollEvent 会阻塞，放到单独的 goroutine 中，通过通道交给主循环
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Session.TicksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || controller.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			controller.Step()
			renderer.Draw(sim.Snapshot())
		}
	}
}
