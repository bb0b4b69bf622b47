package utils

import "testing"

func TestPointerTrackerFeed(t *testing.T) {
	var p PointerTracker

	steps := []struct {
		name         string
		down         bool
		x, y         int
		wantPressed  bool
		wantReleased bool
		wantMoved    bool
	}{
		{"首帧悬停", false, 10, 10, false, false, false},
		{"按下", true, 10, 10, true, false, false},
		{"拖动", true, 20, 15, false, false, true},
		{"按住不动", true, 20, 15, false, false, false},
		{"松开", false, 20, 15, false, true, false},
		{"移动", false, 30, 15, false, false, true},
	}

	for _, st := range steps {
		ev := p.Feed(st.down, st.x, st.y)
		if ev.Pressed != st.wantPressed || ev.Released != st.wantReleased || ev.Moved != st.wantMoved {
			t.Errorf("%s: expected pressed=%v released=%v moved=%v, got %+v",
				st.name, st.wantPressed, st.wantReleased, st.wantMoved, ev)
		}
		if ev.X != float64(st.x) || ev.Y != float64(st.y) {
			t.Errorf("%s: expected position (%d, %d), got (%v, %v)", st.name, st.x, st.y, ev.X, ev.Y)
		}
	}
}

func TestPointerTrackerReset(t *testing.T) {
	var p PointerTracker
	p.Feed(true, 5, 5)
	p.Reset()

	ev := p.Feed(true, 5, 5)
	if !ev.Pressed {
		t.Error("expected press after reset")
	}
}
