package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// PlayerWidth and PlayerHeight size the player sprite and its (never rotated) hitbox
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`

	// TurnRate is the rotation applied per frame while a turn key is held, in degrees
	TurnRate float64 `yaml:"turn_rate"`

	// ThrustDivisor scales the forward unit vector down to a per-frame acceleration
	ThrustDivisor float64 `yaml:"thrust_divisor"`

	// Friction divides the velocity to get the opposing acceleration when not thrusting
	Friction float64 `yaml:"friction"`

	// MaxSpeed caps the player's velocity magnitude in pixels per frame
	MaxSpeed float64 `yaml:"max_speed"`

	MovementLock time.Duration `yaml:"movement_lock"`
	ShootLock    time.Duration `yaml:"shoot_lock"`

	MaxBullets       int     `yaml:"max_bullets"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletSize       float64 `yaml:"bullet_size"`
	BulletHitDamping float64 `yaml:"bullet_hit_damping"`

	// CullOffscreenBullets drops bullets that leave the screen. Off by default:
	// bullets normally live until pushed out of the FIFO.
	CullOffscreenBullets bool `yaml:"cull_offscreen_bullets"`

	AmmoCapacity int `yaml:"ammo_capacity"`
	StartLives   int `yaml:"start_lives"`

	AsteroidSpeed   float64 `yaml:"asteroid_speed"`
	AsteroidMinSize float64 `yaml:"asteroid_min_size"`
	AsteroidMaxSize float64 `yaml:"asteroid_max_size"`

	// Spawn timer: starts at SpawnInterval and shrinks by SpawnIntervalStep per spawn
	SpawnInterval      time.Duration `yaml:"spawn_interval"`
	SpawnIntervalStep  time.Duration `yaml:"spawn_interval_step"`
	SpawnIntervalFloor time.Duration `yaml:"spawn_interval_floor"`

	DestroyedReward int `yaml:"destroyed_reward"`
	EscapeReward    int `yaml:"escape_reward"`

	// FPSSamples is the window of the HUD frame rate average
	FPSSamples int `yaml:"fps_samples"`
}

// MaxLives is the upper bound for StartLives
const MaxLives = 3

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:        800,
		ScreenHeight:       600,
		PlayerWidth:        24.0,
		PlayerHeight:       32.0,
		TurnRate:           5.0,
		ThrustDivisor:      3.0,
		Friction:           27.5,
		MaxSpeed:           5.0,
		MovementLock:       150 * time.Millisecond,
		ShootLock:          150 * time.Millisecond,
		MaxBullets:         32,
		BulletSpeed:        7.0,
		BulletSize:         16.0,
		BulletHitDamping:   0.5,
		AmmoCapacity:       50,
		StartLives:         MaxLives,
		AsteroidSpeed:      2.0,
		AsteroidMinSize:    14.0,
		AsteroidMaxSize:    18.0,
		SpawnInterval:      800 * time.Millisecond,
		SpawnIntervalStep:  10 * time.Millisecond,
		SpawnIntervalFloor: 250 * time.Millisecond,
		DestroyedReward:    100,
		EscapeReward:       25,
		FPSSamples:         16,
	}
}

// ScreenBounds returns the playfield rectangle
func (c Config) ScreenBounds() Rect {
	return Rect{MaxX: float64(c.ScreenWidth), MaxY: float64(c.ScreenHeight)}
}

// Validate reports the first setting that would break a session invariant
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.PlayerWidth <= 0 || c.PlayerHeight <= 0:
		return errors.New("player size must be positive")
	case c.Friction <= 0 || c.ThrustDivisor <= 0:
		return errors.New("friction and thrust_divisor must be positive")
	case c.MaxSpeed <= 0:
		return errors.New("max_speed must be positive")
	case c.MaxBullets < 1:
		return fmt.Errorf("max_bullets %d must be at least 1", c.MaxBullets)
	case c.AmmoCapacity < 0:
		return fmt.Errorf("ammo_capacity %d must not be negative", c.AmmoCapacity)
	case c.StartLives < 1 || c.StartLives > MaxLives:
		return fmt.Errorf("start_lives %d must be between 1 and %d", c.StartLives, MaxLives)
	case c.AsteroidMinSize <= 0 || c.AsteroidMinSize > c.AsteroidMaxSize:
		return fmt.Errorf("asteroid size range [%g, %g] is invalid", c.AsteroidMinSize, c.AsteroidMaxSize)
	case c.SpawnIntervalFloor <= 0 || c.SpawnInterval < c.SpawnIntervalFloor:
		return fmt.Errorf("spawn_interval %s must be at least spawn_interval_floor %s", c.SpawnInterval, c.SpawnIntervalFloor)
	case c.SpawnIntervalStep < 0:
		return errors.New("spawn_interval_step must not be negative")
	case c.DestroyedReward < 0 || c.EscapeReward < 0:
		return errors.New("rewards must not be negative")
	case c.FPSSamples < 1:
		return errors.New("fps_samples must be at least 1")
	}
	return nil
}

// LoadConfig overlays the YAML file at path on DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
