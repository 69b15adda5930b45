package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Edge is a side of the screen
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Spawner releases asteroids on a timer that speeds up after every spawn
type Spawner struct {
	interval time.Duration
	step     time.Duration
	floor    time.Duration
	last     time.Time
}

// NewSpawner creates a spawner whose first asteroid is due one interval after now
func NewSpawner(cfg Config, now time.Time) Spawner {
	return Spawner{
		interval: cfg.SpawnInterval,
		step:     cfg.SpawnIntervalStep,
		floor:    cfg.SpawnIntervalFloor,
		last:     now,
	}
}

// Interval returns the current wait between spawns
func (s Spawner) Interval() time.Duration {
	return s.interval
}

// Due reports whether an asteroid should spawn now. When it returns true the
// timer restarts and the interval shrinks by one step, down to the floor.
func (s *Spawner) Due(now time.Time) (bool, error) {
	elapsed := now.Sub(s.last)
	if elapsed < 0 {
		return false, fmt.Errorf("last spawn %s in the future: %w", -elapsed, ErrClockRegression)
	}
	if elapsed < s.interval {
		return false, nil
	}
	s.last = now
	s.interval = max(s.interval-s.step, s.floor)
	return true, nil
}

// NewAsteroidAtEdge creates an asteroid at a uniform point on a random edge,
// heading straight into the screen
func NewAsteroidAtEdge(cfg Config, rng *rand.Rand) (Asteroid, Edge) {
	w := float64(cfg.ScreenWidth)
	h := float64(cfg.ScreenHeight)
	speed := cfg.AsteroidSpeed

	edge := Edge(rng.Intn(4))
	var pos, vel Vec2
	switch edge {
	case EdgeTop:
		pos = Vec2{rng.Float64() * w, 0}
		vel = Vec2{0, speed}
	case EdgeRight:
		pos = Vec2{w, rng.Float64() * h}
		vel = Vec2{-speed, 0}
	case EdgeBottom:
		pos = Vec2{rng.Float64() * w, h}
		vel = Vec2{0, -speed}
	case EdgeLeft:
		pos = Vec2{0, rng.Float64() * h}
		vel = Vec2{speed, 0}
	}

	size := cfg.AsteroidMinSize + rng.Float64()*(cfg.AsteroidMaxSize-cfg.AsteroidMinSize)
	return Asteroid{Size: size, Pos: pos, Vel: vel}, edge
}
