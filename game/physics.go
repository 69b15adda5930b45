package game

// Step applies one frame of input-driven physics to the player.
// Thrust is ignored while movementLocked; steering is not.
// There is no delta time: every call is one fixed frame.
func (p *Player) Step(in Input, movementLocked bool, cfg Config) {
	// Opposing acceleration gives an exponential decay toward rest.
	acc := p.Vel.Scale(-1 / cfg.Friction)
	if in.Thrust && !movementLocked {
		acc = heading(p.Rotation).Scale(1 / cfg.ThrustDivisor)
	}

	if in.TurnRight {
		p.Rotation += cfg.TurnRate
	} else if in.TurnLeft {
		p.Rotation -= cfg.TurnRate
	}

	p.Vel = p.Vel.Add(acc).ClampLen(cfg.MaxSpeed)
	p.Pos = p.Pos.Add(p.Vel)
}

// Bounce keeps the player inside bounds. For each axis that crossed an edge
// the position is clamped to the edge and that velocity component is inverted.
// Returns true if any edge was hit.
func (p *Player) Bounce(bounds Rect) bool {
	hit := false
	if p.Pos.X < bounds.MinX {
		p.Pos.X = bounds.MinX
		p.Vel.X = -p.Vel.X
		hit = true
	} else if p.Pos.X > bounds.MaxX {
		p.Pos.X = bounds.MaxX
		p.Vel.X = -p.Vel.X
		hit = true
	}
	if p.Pos.Y < bounds.MinY {
		p.Pos.Y = bounds.MinY
		p.Vel.Y = -p.Vel.Y
		hit = true
	} else if p.Pos.Y > bounds.MaxY {
		p.Pos.Y = bounds.MaxY
		p.Vel.Y = -p.Vel.Y
		hit = true
	}
	return hit
}
