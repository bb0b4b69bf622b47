package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/arrowfish/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置配置）")
	seed       = flag.Uint64("seed", 0, "随机种子，0 表示按时间生成")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Mute:       *mute,
	})
	if err != nil {
		fail("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("弓箭射鱼")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fail("游戏运行失败: %v", err)
	}
}

// fail 输出到 stderr 后退出，非 verbose 模式下 log 已被静音
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
