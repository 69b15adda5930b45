package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the session's top-level state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is everything a restart throws away
type State struct {
	Phase  Phase
	Player Player
	World  World

	Lives int
	Score int
	Ammo  int

	MoveLock  Lockout
	ShootLock Lockout
	Spawner   Spawner

	Frame uint64
}

// StepEvents describes what happened during one Step
type StepEvents struct {
	Spawned    bool
	Bounced    bool
	Fired      bool
	Collisions CollisionReport
	Scored     int
	LivesLost  int
	GameOver   bool
	Restarted  bool
}

// Session owns the game state and advances it one frame at a time.
// It never touches the screen or the keyboard.
type Session struct {
	config     Config
	clock      Clock
	rng        *rand.Rand
	logger     *log.Logger
	collisions *CollisionSystem

	State State
}

// NewSession creates a session in the playing phase
func NewSession(config Config, clock Clock, rng *rand.Rand, logger *log.Logger) *Session {
	s := &Session{
		config:     config,
		clock:      clock,
		rng:        rng,
		logger:     logger,
		collisions: NewCollisionSystem(config),
	}
	s.State = s.newState()
	return s
}

func (s *Session) newState() State {
	now := s.clock.Now()
	return State{
		Phase:     PhasePlaying,
		Player:    NewPlayer(s.config),
		World:     NewWorld(s.config.MaxBullets),
		Lives:     s.config.StartLives,
		Ammo:      s.config.AmmoCapacity,
		MoveLock:  NewLockout(s.config.MovementLock),
		ShootLock: NewLockout(s.config.ShootLock),
		Spawner:   NewSpawner(s.config, now),
	}
}

// Config returns the session configuration
func (s *Session) Config() Config {
	return s.config
}

// Reset puts every piece of session state back to its initial value
func (s *Session) Reset() {
	s.State = s.newState()
}

// Step advances the session by one frame
func (s *Session) Step(in Input) StepEvents {
	var ev StepEvents
	st := &s.State
	st.Frame++

	if st.Phase == PhaseGameOver {
		if in.Restart {
			s.logger.Info("restarting", "final_score", st.Score)
			s.Reset()
			ev.Restarted = true
		}
		return ev
	}

	now := s.clock.Now()

	due, err := st.Spawner.Due(now)
	if err != nil {
		s.logger.Warn("spawn timer check failed", "err", err)
	}
	if due {
		a, edge := NewAsteroidAtEdge(s.config, s.rng)
		id := st.World.AddAsteroid(a)
		ev.Spawned = true
		s.logger.Debug("asteroid spawned", "id", id, "edge", edge, "size", a.Size, "next_in", st.Spawner.Interval())
	}

	st.Player.Step(in, st.MoveLock.Active(), s.config)
	if st.Player.Bounce(s.config.ScreenBounds()) {
		st.MoveLock.Start(now)
		ev.Bounced = true
	}

	s.updateLockout(&st.MoveLock, "movement", now)
	s.updateLockout(&st.ShootLock, "shoot", now)

	if in.Fire {
		ev.Fired = s.fire(now)
	}

	st.World.Move()
	if s.config.CullOffscreenBullets {
		st.World.CullBullets(s.config.ScreenBounds())
	}

	report := s.collisions.Check(&st.World, st.Player)
	ev.Collisions = report
	ev.Scored = report.Score(s.config)
	st.Score += ev.Scored
	if len(report.Destroyed) > 0 {
		s.logger.Debug("asteroids destroyed", "ids", report.Destroyed, "score", st.Score)
	}

	for range report.PlayerHits {
		if st.Lives == 0 {
			break
		}
		st.Lives--
		ev.LivesLost++
	}
	if ev.LivesLost > 0 {
		s.logger.Debug("player hit", "lives", st.Lives)
	}

	if st.Lives == 0 {
		st.Phase = PhaseGameOver
		ev.GameOver = true
		s.logger.Info("game over", "score", st.Score, "frames", st.Frame)
	}
	return ev
}

// fire launches a bullet from the ship's nose if the shoot lockout is clear
// and ammo remains
func (s *Session) fire(now time.Time) bool {
	st := &s.State
	if st.ShootLock.Active() || st.Ammo <= 0 {
		return false
	}
	p := st.Player
	st.World.AddBullet(Bullet{
		Rotation: p.Rotation,
		Pos:      p.Nose(s.config),
		Vel:      heading(p.Rotation).Scale(s.config.BulletSpeed),
	})
	st.Ammo--
	st.ShootLock.Start(now)
	return true
}

// updateLockout clears an expired lockout. A failed check is logged and the
// lockout is left as it was for this frame.
func (s *Session) updateLockout(l *Lockout, name string, now time.Time) {
	if err := l.Update(now); err != nil {
		s.logger.Warn("lockout check failed", "lock", name, "err", err)
	}
}
