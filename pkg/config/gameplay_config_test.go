package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/arrowfish/pkg/types"
)

func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()

	if cfg.Field.Width != 800 || cfg.Field.Height != 600 {
		t.Errorf("expected 800x600 field, got %.0fx%.0f", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Session.DurationSeconds != 45 {
		t.Errorf("expected 45s session, got %d", cfg.Session.DurationSeconds)
	}
	if cfg.Fever.Threshold != 5 {
		t.Errorf("expected fever threshold 5, got %d", cfg.Fever.Threshold)
	}
	if len(cfg.FishTypes) != 5 {
		t.Fatalf("expected 5 fish types, got %d", len(cfg.FishTypes))
	}
	if got := cfg.TotalSpawnWeight(); got < 0.999 || got > 1.001 {
		t.Errorf("expected total spawn weight 1.0, got %v", got)
	}
	if got := cfg.PowerUpTicks(); got != 360 {
		t.Errorf("expected power-up duration 360 ticks, got %d", got)
	}
	if len(cfg.Spawn.IntervalSteps) != 2 {
		t.Errorf("expected 2 interval steps, got %d", len(cfg.Spawn.IntervalSteps))
	}
}

func TestDefaultGameplayConfig_ReturnsCopies(t *testing.T) {
	a := DefaultGameplayConfig()
	b := DefaultGameplayConfig()

	a.Fever.Threshold = 99
	a.FishTypes[0].Score = -1

	if b.Fever.Threshold != 5 || b.FishTypes[0].Score != 10 {
		t.Error("expected independent copies of the default config")
	}
}

func TestFishTypeKinds(t *testing.T) {
	cfg := DefaultGameplayConfig()

	tests := []struct {
		id   int
		want types.FishKind
	}{
		{1, types.FishKindNormal},
		{3, types.FishKindNormal},
		{4, types.FishKindTimeBonus},
		{5, types.FishKindHazard},
	}

	for _, tt := range tests {
		var found bool
		for _, ft := range cfg.FishTypes {
			if ft.ID == tt.id {
				found = true
				if got := ft.Kind(); got != tt.want {
					t.Errorf("fish %d: expected kind %v, got %v", tt.id, tt.want, got)
				}
			}
		}
		if !found {
			t.Errorf("fish %d not found", tt.id)
		}
	}
}

func TestPowerUpType(t *testing.T) {
	cfg := DefaultGameplayConfig()

	p, ok := cfg.PowerUpType(types.PowerUpBeam)
	if !ok {
		t.Fatal("expected laser power-up definition")
	}
	if p.Color != "#F012BE" {
		t.Errorf("expected laser color #F012BE, got %s", p.Color)
	}

	if _, ok := cfg.PowerUpType(types.PowerUpNone); ok {
		t.Error("expected no definition for PowerUpNone")
	}
}

func TestParseGameplayConfig_OverridesDefaults(t *testing.T) {
	data := []byte(`
session:
  durationSeconds: 60
fever:
  threshold: 3
`)

	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Session.DurationSeconds != 60 {
		t.Errorf("expected 60s session, got %d", cfg.Session.DurationSeconds)
	}
	if cfg.Fever.Threshold != 3 {
		t.Errorf("expected threshold 3, got %d", cfg.Fever.Threshold)
	}
	// 未出现的字段保留默认值
	if cfg.Session.TicksPerSecond != 60 {
		t.Errorf("expected default ticksPerSecond 60, got %d", cfg.Session.TicksPerSecond)
	}
	if cfg.Boss.CoreHP != 20 {
		t.Errorf("expected default core hp 20, got %d", cfg.Boss.CoreHP)
	}
}

func TestParseGameplayConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"YAML 语法错误", "session: [", "parse"},
		{"时长为 0", "session:\n  durationSeconds: 0", "durationSeconds"},
		{"狂热阈值为 0", "fever:\n  threshold: 0", "threshold"},
		{"蓄力比例越界", "launcher:\n  pierceChargeRatio: 1.5", "pierceChargeRatio"},
		{"气泡概率越界", "spawn:\n  bubbleChance: 2", "bubbleChance"},
		{"未知鱼效果", "fishTypes:\n  - id: 9\n    name: x\n    effect: poison\n    radius: 10\n    hp: 1\n    spawnWeight: 1", "fish type 9"},
		{"权重全为 0", "fishTypes:\n  - id: 1\n    name: x\n    effect: normal\n    radius: 10\n    hp: 1\n    spawnWeight: 0", "spawnWeight"},
		{"未知道具", "powerUps:\n  - type: shield", "shield"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameplayConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadGameplayConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gameplay.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  spawnAtSeconds: 15\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameplayConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Boss.SpawnAtSeconds != 15 {
		t.Errorf("expected spawnAtSeconds 15, got %d", cfg.Boss.SpawnAtSeconds)
	}

	if _, err := LoadGameplayConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}
