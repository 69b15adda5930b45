package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestSpawnerWaitsForInterval(t *testing.T) {
	cfg := DefaultConfig()
	start := time.Unix(1000, 0)
	s := NewSpawner(cfg, start)

	if due, _ := s.Due(start.Add(799 * time.Millisecond)); due {
		t.Error("spawned before the interval elapsed")
	}
	due, err := s.Due(start.Add(800 * time.Millisecond))
	if err != nil || !due {
		t.Fatalf("expected a spawn at 800ms, got due=%v err=%v", due, err)
	}
	if s.Interval() != 790*time.Millisecond {
		t.Errorf("expected interval 790ms, got %s", s.Interval())
	}
	if due, _ := s.Due(start.Add(801 * time.Millisecond)); due {
		t.Error("timer did not restart after a spawn")
	}
}

func TestSpawnerIntervalRamp(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Unix(1000, 0)
	s := NewSpawner(cfg, now)

	prev := s.Interval()
	for i := 0; i < 200; i++ {
		now = now.Add(s.Interval())
		due, err := s.Due(now)
		if err != nil || !due {
			t.Fatalf("spawn %d: due=%v err=%v", i, due, err)
		}
		if s.Interval() > prev {
			t.Fatalf("spawn %d: interval grew from %s to %s", i, prev, s.Interval())
		}
		if s.Interval() < cfg.SpawnIntervalFloor {
			t.Fatalf("spawn %d: interval %s below floor", i, s.Interval())
		}
		prev = s.Interval()
	}
	if s.Interval() != cfg.SpawnIntervalFloor {
		t.Errorf("expected interval to settle at %s, got %s", cfg.SpawnIntervalFloor, s.Interval())
	}
}

func TestSpawnerClockRegression(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewSpawner(DefaultConfig(), start)

	due, err := s.Due(start.Add(-time.Millisecond))
	if due {
		t.Error("spawned on a clock regression")
	}
	if !errors.Is(err, ErrClockRegression) {
		t.Errorf("expected ErrClockRegression, got %v", err)
	}
}

func TestNewAsteroidAtEdge(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(3))
	w := float64(cfg.ScreenWidth)
	h := float64(cfg.ScreenHeight)
	seen := make(map[Edge]int)

	for i := 0; i < 1000; i++ {
		a, edge := NewAsteroidAtEdge(cfg, rng)
		seen[edge]++

		if a.Size < cfg.AsteroidMinSize || a.Size > cfg.AsteroidMaxSize {
			t.Fatalf("size %f out of range", a.Size)
		}
		if a.Vel.Len() != cfg.AsteroidSpeed {
			t.Fatalf("speed %f, want %f", a.Vel.Len(), cfg.AsteroidSpeed)
		}

		var onEdge, inward bool
		switch edge {
		case EdgeTop:
			onEdge = a.Pos.Y == 0 && a.Pos.X >= 0 && a.Pos.X <= w
			inward = a.Vel.Y > 0 && a.Vel.X == 0
		case EdgeBottom:
			onEdge = a.Pos.Y == h && a.Pos.X >= 0 && a.Pos.X <= w
			inward = a.Vel.Y < 0 && a.Vel.X == 0
		case EdgeLeft:
			onEdge = a.Pos.X == 0 && a.Pos.Y >= 0 && a.Pos.Y <= h
			inward = a.Vel.X > 0 && a.Vel.Y == 0
		case EdgeRight:
			onEdge = a.Pos.X == w && a.Pos.Y >= 0 && a.Pos.Y <= h
			inward = a.Vel.X < 0 && a.Vel.Y == 0
		}
		if !onEdge || !inward {
			t.Fatalf("%s asteroid at %+v moving %+v", edge, a.Pos, a.Vel)
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected all four edges, saw %v", seen)
	}
}
