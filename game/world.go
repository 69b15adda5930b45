package game

// World holds the bullets and asteroids of a session and hands out their IDs
type World struct {
	Bullets   []Bullet
	Asteroids []Asteroid

	maxBullets int
	lastID     EntityID
}

// NewWorld creates an empty world whose bullet list is capped at maxBullets
func NewWorld(maxBullets int) World {
	return World{
		Bullets:    make([]Bullet, 0, maxBullets+1),
		Asteroids:  make([]Asteroid, 0, 64),
		maxBullets: maxBullets,
	}
}

func (w *World) nextID() EntityID {
	w.lastID++
	return w.lastID
}

// AddBullet appends a bullet, discarding the oldest one once the cap is exceeded
func (w *World) AddBullet(b Bullet) EntityID {
	b.ID = w.nextID()
	w.Bullets = append(w.Bullets, b)
	if len(w.Bullets) > w.maxBullets {
		copy(w.Bullets, w.Bullets[1:])
		w.Bullets = w.Bullets[:len(w.Bullets)-1]
	}
	return b.ID
}

// AddAsteroid registers an asteroid and returns its ID
func (w *World) AddAsteroid(a Asteroid) EntityID {
	a.ID = w.nextID()
	w.Asteroids = append(w.Asteroids, a)
	return a.ID
}

// Move advances every bullet and asteroid by one frame of velocity
func (w *World) Move() {
	for i := range w.Bullets {
		w.Bullets[i].Pos = w.Bullets[i].Pos.Add(w.Bullets[i].Vel)
	}
	for i := range w.Asteroids {
		w.Asteroids[i].Pos = w.Asteroids[i].Pos.Add(w.Asteroids[i].Vel)
	}
}

// RemoveAsteroids drops the asteroids whose IDs are in ids and returns how many went
func (w *World) RemoveAsteroids(ids map[EntityID]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	kept := w.Asteroids[:0]
	for _, a := range w.Asteroids {
		if _, gone := ids[a.ID]; !gone {
			kept = append(kept, a)
		}
	}
	removed := len(w.Asteroids) - len(kept)
	w.Asteroids = kept
	return removed
}

// CullBullets drops bullets outside bounds and returns how many went
func (w *World) CullBullets(bounds Rect) int {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		if bounds.Contains(b.Pos) {
			kept = append(kept, b)
		}
	}
	removed := len(w.Bullets) - len(kept)
	w.Bullets = kept
	return removed
}
