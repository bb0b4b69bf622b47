package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/arrowfish/pkg/config"
	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gonewx/arrowfish/pkg/systems"
	"github.com/gonewx/arrowfish/pkg/utils"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	screen := newTestScreen(t)
	sim := systems.NewSimulation(config.DefaultGameplayConfig(), utils.NewRandom(3), game.NewDispatcher())
	return NewController(sim, screen, 60)
}

func mouse(col, row int, down bool) *tcell.EventMouse {
	btn := tcell.ButtonNone
	if down {
		btn = tcell.Button1
	}
	return tcell.NewEventMouse(col, row, btn, tcell.ModNone)
}

func TestController_ClickStartsSession(t *testing.T) {
	c := newTestController(t)

	c.HandleEvent(mouse(40, 12, true))
	if c.sim.Phase() != game.PhasePlaying {
		t.Fatalf("expected playing after click, got %v", c.sim.Phase())
	}
	if c.sim.Session().Launcher.Charging {
		t.Error("expected the starting click not to charge")
	}
}

func TestController_DragAndReleaseFires(t *testing.T) {
	c := newTestController(t)
	c.sim.Start()

	c.HandleEvent(mouse(40, 5, true))
	if !c.sim.Session().Launcher.Charging {
		t.Fatal("expected charging after mouse down")
	}
	c.HandleEvent(mouse(50, 5, true))
	c.HandleEvent(mouse(50, 5, false))

	if n := c.sim.Session().Projectiles.Len(); n != 1 {
		t.Errorf("expected 1 projectile, got %d", n)
	}
}

func TestController_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"其他键忽略", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			if got := c.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("expected quit=%v, got %v", tt.quit, got)
			}
		})
	}
}

func TestController_RestartKey(t *testing.T) {
	c := newTestController(t)

	// 就绪阶段 r 不开局
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if c.sim.Phase() != game.PhaseReady {
		t.Fatalf("expected r to be ignored before start, got %v", c.sim.Phase())
	}

	c.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if c.sim.Phase() != game.PhasePlaying {
		t.Fatalf("expected Enter to start, got %v", c.sim.Phase())
	}
	before := c.sim.Session().ID

	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if c.sim.Session().ID == before {
		t.Error("expected a new session after r")
	}
}

func TestController_StepElapsesSeconds(t *testing.T) {
	c := newTestController(t)
	c.sim.Start()
	start := c.sim.Session().TimeLeft

	for i := 0; i < 150; i++ {
		c.Step()
	}

	if got := c.sim.Session().TimeLeft; got != start-2 {
		t.Errorf("expected TimeLeft %d after 150 ticks, got %d", start-2, got)
	}
	if c.ticks != 30 {
		t.Errorf("expected 30 ticks carried over, got %d", c.ticks)
	}
}

func TestSpeakerCues_IgnoredUntilInitialized(t *testing.T) {
	sc := NewSpeakerCues()

	if sc.Play(game.SignalFishKilled) {
		t.Error("expected Play to be a no-op before Initialize")
	}
	sc.OnSignal(game.Signal{Kind: game.SignalFeverStarted})
	if n := sc.mixer.Len(); n != 0 {
		t.Errorf("expected empty mixer, got %d streamers", n)
	}
	sc.Close()
}
