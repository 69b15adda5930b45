package game

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func autopilotState(t *testing.T, target Vec2) *State {
	t.Helper()
	s := NewSession(DefaultConfig(), NewFrameClock(time.Unix(0, 0), time.Second/60), rand.New(rand.NewSource(1)), log.New(io.Discard))
	s.State.World.AddAsteroid(Asteroid{Size: 16, Pos: target})
	return &s.State
}

func TestAutopilotInput(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		target Vec2
		want   Input
	}{
		{"dead ahead", Vec2{400, 100}, Input{Fire: true}},
		{"to the right", Vec2{600, 300}, Input{TurnRight: true}},
		{"to the left", Vec2{200, 300}, Input{TurnLeft: true}},
		{"slightly right", Vec2{410, 100}, Input{TurnRight: true, Fire: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := autopilotState(t, tt.target)
			if got := NewAutopilot().Input(st, cfg); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAutopilotIdle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, NewFrameClock(time.Unix(0, 0), time.Second/60), rand.New(rand.NewSource(1)), log.New(io.Discard))

	if got := NewAutopilot().Input(&s.State, cfg); got != (Input{}) {
		t.Errorf("expected no input with an empty field, got %+v", got)
	}

	s.State.World.AddAsteroid(Asteroid{Size: 16, Pos: Vec2{400, 100}})
	s.State.Phase = PhaseGameOver
	if got := NewAutopilot().Input(&s.State, cfg); got != (Input{}) {
		t.Errorf("expected no input after game over, got %+v", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{-365, -5},
	}
	for _, tt := range tests {
		if got := normalizeDegrees(tt.in); got != tt.want {
			t.Errorf("normalizeDegrees(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
