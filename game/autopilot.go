package game

import (
	"math"
)

// Autopilot produces input that turns the ship toward the nearest asteroid
// and fires once the nose is within AimTolerance degrees of it. It never thrusts.
type Autopilot struct {
	AimTolerance float64
}

// NewAutopilot creates an autopilot with a 10 degree firing cone
func NewAutopilot() Autopilot {
	return Autopilot{AimTolerance: 10}
}

// Input returns the controls for the current frame of st
func (a Autopilot) Input(st *State, cfg Config) Input {
	if st.Phase != PhasePlaying {
		return Input{}
	}
	target, ok := nearestAsteroid(st.World.Asteroids, st.Player.Pos)
	if !ok {
		return Input{}
	}

	dx := target.Pos.X - st.Player.Pos.X
	dy := target.Pos.Y - st.Player.Pos.Y
	want := math.Atan2(dx, -dy) * 180 / math.Pi
	diff := normalizeDegrees(want - st.Player.Rotation)

	var in Input
	// Within half a turn step any further turn would overshoot.
	if diff > cfg.TurnRate/2 {
		in.TurnRight = true
	} else if diff < -cfg.TurnRate/2 {
		in.TurnLeft = true
	}
	in.Fire = math.Abs(diff) <= a.AimTolerance
	return in
}

func nearestAsteroid(asteroids []Asteroid, from Vec2) (Asteroid, bool) {
	var nearest Asteroid
	found := false
	bestSq := math.Inf(1)
	for _, a := range asteroids {
		dx := a.Pos.X - from.X
		dy := a.Pos.Y - from.Y
		if d := dx*dx + dy*dy; d < bestSq {
			bestSq = d
			nearest = a
			found = true
		}
	}
	return nearest, found
}

// normalizeDegrees maps an angle to (-180, 180]
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
