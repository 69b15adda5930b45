package game

// CollisionReport lists the asteroids removed in one frame, by cause.
// Every removed asteroid appears in exactly one list.
type CollisionReport struct {
	Destroyed  []EntityID // hit by a bullet
	PlayerHits []EntityID // rammed the player
	Escaped    []EntityID // left the screen
}

// Removed returns the number of asteroids removed
func (r CollisionReport) Removed() int {
	return len(r.Destroyed) + len(r.PlayerHits) + len(r.Escaped)
}

// Score returns the points earned by the report
func (r CollisionReport) Score(cfg Config) int {
	return len(r.Destroyed)*cfg.DestroyedReward + len(r.Escaped)*cfg.EscapeReward
}

// CollisionSystem runs the per-frame bounding box checks
type CollisionSystem struct {
	config Config
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(config Config) *CollisionSystem {
	return &CollisionSystem{config: config}
}

// Check runs bullet×asteroid, player×asteroid and out-of-bounds checks in that
// order and removes every asteroid claimed by one of them. An asteroid is
// claimed by the first check that matches it and skipped by the rest.
// Bullets that hit are damped, not removed.
func (c *CollisionSystem) Check(w *World, player Player) CollisionReport {
	var report CollisionReport
	claimed := make(map[EntityID]struct{})

	for i := range w.Bullets {
		b := &w.Bullets[i]
		for _, a := range w.Asteroids {
			if _, ok := claimed[a.ID]; ok {
				continue
			}
			if a.Box().Contains(b.Pos) {
				claimed[a.ID] = struct{}{}
				report.Destroyed = append(report.Destroyed, a.ID)
				b.Vel = b.Vel.Scale(c.config.BulletHitDamping)
			}
		}
	}

	hitbox := player.Hitbox(c.config)
	for _, a := range w.Asteroids {
		if _, ok := claimed[a.ID]; ok {
			continue
		}
		if hitbox.Overlaps(a.Box()) {
			claimed[a.ID] = struct{}{}
			report.PlayerHits = append(report.PlayerHits, a.ID)
		}
	}

	bounds := c.config.ScreenBounds()
	for _, a := range w.Asteroids {
		if _, ok := claimed[a.ID]; ok {
			continue
		}
		if !bounds.Contains(a.Pos) {
			claimed[a.ID] = struct{}{}
			report.Escaped = append(report.Escaped, a.ID)
		}
	}

	w.RemoveAsteroids(claimed)
	return report
}
