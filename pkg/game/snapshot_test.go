package game

import (
	"testing"

	"github.com/gonewx/arrowfish/pkg/types"
)

func TestHUDFeverBar(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(s *Session)
		wantBar     float64
		wantLabel   string
		wantVisible bool
	}{
		{
			name:        "连击进度",
			setup:       func(s *Session) { s.Combo = 2 },
			wantBar:     0.4,
			wantLabel:   "FEVER: 2/5",
			wantVisible: true,
		},
		{
			name: "狂热中",
			setup: func(s *Session) {
				s.FeverActive = true
				s.Combo = 9
			},
			wantBar:     1,
			wantLabel:   "FEVER TIME!",
			wantVisible: true,
		},
		{
			name: "散射道具优先",
			setup: func(s *Session) {
				s.FeverActive = true
				s.Launcher.ActivatePowerUp(types.PowerUpSpread)
			},
			wantBar:     1,
			wantLabel:   "SCATTER MODE",
			wantVisible: true,
		},
		{
			name:        "激光道具",
			setup:       func(s *Session) { s.Launcher.ActivatePowerUp(types.PowerUpBeam) },
			wantBar:     1,
			wantLabel:   "LASER MODE",
			wantVisible: true,
		},
		{
			name:        "触手阶段隐藏",
			setup:       func(s *Session) { forceBoss(s, types.BossEngaged) },
			wantBar:     0,
			wantLabel:   "FEVER: 0/5",
			wantVisible: false,
		},
		{
			name:        "核心暴露时显示",
			setup:       func(s *Session) { forceBoss(s, types.BossCoreExposed) },
			wantBar:     0,
			wantLabel:   "FEVER: 0/5",
			wantVisible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingSession()
			tt.setup(s)
			hud := s.Snapshot().HUD

			if hud.FeverBar != tt.wantBar {
				t.Errorf("expected bar %v, got %v", tt.wantBar, hud.FeverBar)
			}
			if hud.FeverBarLabel != tt.wantLabel {
				t.Errorf("expected label %q, got %q", tt.wantLabel, hud.FeverBarLabel)
			}
			if hud.FeverBarVisible != tt.wantVisible {
				t.Errorf("expected visible=%v, got %v", tt.wantVisible, hud.FeverBarVisible)
			}
		})
	}
}

func TestSnapshotSkipsDeadEntities(t *testing.T) {
	s := newPlayingSession()
	addFish(s, 1, 100, 100)
	dead := addFish(s, 2, 200, 100)
	dead.Kill()

	snap := s.Snapshot()
	if len(snap.Fish) != 1 {
		t.Fatalf("expected 1 fish view, got %d", len(snap.Fish))
	}
	if snap.Fish[0].Color != "#FF4136" {
		t.Errorf("expected clownfish color, got %s", snap.Fish[0].Color)
	}
	if snap.Boss != nil {
		t.Error("expected no boss view")
	}
	if snap.Launcher.Trajectory != nil {
		t.Error("expected no trajectory when not charging")
	}
	if snap.SessionID != s.ID.String() {
		t.Errorf("expected session id %s, got %s", s.ID, snap.SessionID)
	}
}

func TestSnapshotBossView(t *testing.T) {
	s := newPlayingSession()
	b := forceBoss(s, types.BossEngaged)
	b.Tentacles[1].Dead = true

	snap := s.Snapshot()
	if snap.Boss == nil {
		t.Fatal("expected boss view")
	}
	if len(snap.Boss.Tentacles) != 4 {
		t.Fatalf("expected 4 tentacles, got %d", len(snap.Boss.Tentacles))
	}
	if !snap.Boss.Tentacles[1].Dead || snap.Boss.Tentacles[0].Dead {
		t.Error("tentacle dead flags not carried into view")
	}
	if snap.Boss.X != b.X+b.Sway {
		t.Errorf("expected boss x %v, got %v", b.X+b.Sway, snap.Boss.X)
	}
}
