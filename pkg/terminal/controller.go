package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/utils"
)

// Controller 把 tcell 事件转换为模拟输入，并按帧数驱动倒计时
//
// 所有方法都必须在拥有模拟的同一个 goroutine 中调用。
type Controller struct {
	sim      *systems.Simulation
	screen   tcell.Screen
	pointer  utils.PointerTracker
	perSec   int
	ticks    int // 本秒内已推进的帧数
	quitting bool
}

// NewController 创建控制器
//
// 参数:
//   - sim: 模拟
//   - screen: 用于把鼠标位置换算成场地坐标
//   - ticksPerSecond: 每多少帧调用一次 ElapseSecond
func NewController(sim *systems.Simulation, screen tcell.Screen, ticksPerSecond int) *Controller {
	return &Controller{
		sim:    sim,
		screen: screen,
		perSec: max(ticksPerSecond, 1),
	}
}

// HandleEvent 处理一个终端事件
//
// 返回:
//   - bool: 是否请求退出
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return c.quitting
}

func (c *Controller) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quitting = true
		return
	case tcell.KeyEnter:
		if c.sim.Phase() == game.PhaseReady {
			c.start()
		}
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		c.quitting = true
	case 'r', 'R':
		if c.sim.Phase() != game.PhaseReady {
			c.restart()
		}
	}
}

func (c *Controller) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	v := ViewportFor(c.screen, c.sim.Snapshot())
	x, y := v.Field(col, row)

	p := c.pointer.Feed(ev.Buttons()&tcell.Button1 != 0, int(x), int(y))

	switch c.sim.Phase() {
	case game.PhaseReady:
		if p.Pressed {
			c.start()
		}
		return
	case game.PhaseOver:
		if p.Pressed {
			c.restart()
		}
		return
	}

	if p.Pressed {
		c.sim.Press(p.X, p.Y)
	} else if p.Moved {
		c.sim.Move(p.X, p.Y)
	}
	if p.Released {
		c.sim.Release()
	}
}

func (c *Controller) start() {
	log.Printf("[Terminal] Starting session")
	c.sim.Start()
	c.ticks = 0
}

func (c *Controller) restart() {
	log.Printf("[Terminal] Restarting session")
	c.sim.Restart()
	c.pointer.Reset()
	c.ticks = 0
}

// Step 推进一帧，满 ticksPerSecond 帧时调用一次 ElapseSecond
func (c *Controller) Step() {
	c.sim.Tick()
	if c.sim.Phase() != game.PhasePlaying {
		c.ticks = 0
		return
	}

	c.ticks++
	if c.ticks >= c.perSec {
		c.ticks = 0
		c.sim.ElapseSecond()
	}
}

// Quitting 是否已请求退出
func (c *Controller) Quitting() bool {
	return c.quitting
}
