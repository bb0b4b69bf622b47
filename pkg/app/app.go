// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/scenes"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	sampleRate  = 48000
	cueVolume   = 0.5
	deltaTime   = 1.0 / 60.0
	resizeDelay = 3 // 退出全屏后等待的帧数
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空使用内置默认值
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// Mute 启动时关闭音效
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	cues         *game.AudioCues
	width        int
	height       int
	verbose      bool
	muted        bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := loadGameplay(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Seed: %d", seed)

	// 音效订阅所有事件，没有对应音效的事件会被忽略
	signals := game.NewDispatcher()
	cues := game.NewAudioCues(audio.NewContext(sampleRate), cueVolume)
	cues.SetEnabled(!cfg.Mute)
	cues.Preload(
		game.SignalProjectileFired,
		game.SignalFishKilled,
		game.SignalFeverStarted,
		game.SignalHazardExploded,
		game.SignalPowerUpGranted,
	)
	signals.SubscribeAll(cues)
	log.Printf("[App] AudioCues initialized (muted=%v)", cfg.Mute)

	sim := systems.NewSimulation(gameplay, utils.NewRandom(seed), signals)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != "game" {
			return nil
		}
		return scenes.NewGameScene(sim)
	})
	sceneManager.LoadScene("game")

	return &App{
		sceneManager: sceneManager,
		cues:         cues,
		width:        int(gameplay.Field.Width),
		height:       int(gameplay.Field.Height),
		verbose:      cfg.Verbose,
		muted:        cfg.Mute,
	}, nil
}

// loadGameplay 读取玩法配置，路径为空时使用内置默认值
func loadGameplay(path string) (*config.GameplayConfig, error) {
	if path == "" {
		return config.DefaultGameplayConfig(), nil
	}
	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded gameplay config from %s", path)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = resizeDelay
			log.Printf("[App] Exit fullscreen, will reset window size in %d frames", resizeDelay)
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 静音切换
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.ToggleMute()
	}

	a.sceneManager.Update(deltaTime)
	return nil
}

// ToggleMute 切换音效开关
func (a *App) ToggleMute() {
	a.muted = !a.muted
	a.cues.SetEnabled(!a.muted)
	log.Printf("[App] Muted: %v", a.muted)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，与玩法配置的场地一致
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
