package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "space-evasion.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, "max_speed: 7.5\nshoot_lock: 300ms\nstart_lives: 2\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSpeed != 7.5 {
		t.Errorf("max_speed: got %f", cfg.MaxSpeed)
	}
	if cfg.ShootLock != 300*time.Millisecond {
		t.Errorf("shoot_lock: got %s", cfg.ShootLock)
	}
	if cfg.StartLives != 2 {
		t.Errorf("start_lives: got %d", cfg.StartLives)
	}
	if cfg.Friction != DefaultConfig().Friction {
		t.Errorf("unset field lost its default: friction %f", cfg.Friction)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, "failed to read config"},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "max_speed: [1, 2\n") }, "failed to parse config"},
		{"invalid value", func(t *testing.T) string { return writeConfig(t, "start_lives: 5\n") }, "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"one life", func(c *Config) { c.StartLives = 1 }, true},
		{"zero lives", func(c *Config) { c.StartLives = 0 }, false},
		{"too many lives", func(c *Config) { c.StartLives = MaxLives + 1 }, false},
		{"no bullets", func(c *Config) { c.MaxBullets = 0 }, false},
		{"zero friction", func(c *Config) { c.Friction = 0 }, false},
		{"inverted asteroid sizes", func(c *Config) { c.AsteroidMinSize = 20 }, false},
		{"interval below floor", func(c *Config) { c.SpawnInterval = 100 * time.Millisecond }, false},
		{"negative ammo", func(c *Config) { c.AmmoCapacity = -1 }, false},
		{"zero ammo", func(c *Config) { c.AmmoCapacity = 0 }, true},
		{"no fps samples", func(c *Config) { c.FPSSamples = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, err)
			}
		})
	}
}
