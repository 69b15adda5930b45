package game

import (
	"math"
)

// EntityID identifies a bullet or asteroid for the lifetime of a session.
// IDs are never reused, so removal never depends on position or size.
type EntityID uint64

// Vec2 is a 2D vector in screen pixels
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// ClampLen rescales v to at most max, keeping its direction
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// heading returns the unit vector for a rotation in degrees.
// Rotation 0 points up the screen.
func heading(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Sin(rad), -math.Cos(rad)}
}

// Rect is an axis-aligned box. Edges are inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectAround returns the w×h box centred on c
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{
		MinX: c.X - w/2,
		MinY: c.Y - h/2,
		MaxX: c.X + w/2,
		MaxY: c.Y + h/2,
	}
}

// Overlaps checks if two boxes intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Contains checks if p lies inside the box
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Player is the ship. Rotation is in degrees.
type Player struct {
	Rotation float64
	Pos      Vec2
	Vel      Vec2
}

// NewPlayer creates a player at rest in the middle of the screen
func NewPlayer(cfg Config) Player {
	return Player{
		Pos: Vec2{float64(cfg.ScreenWidth) / 2, float64(cfg.ScreenHeight) / 2},
	}
}

// Hitbox is the player's fixed-size box. It ignores rotation.
func (p Player) Hitbox(cfg Config) Rect {
	return RectAround(p.Pos, cfg.PlayerWidth, cfg.PlayerHeight)
}

// Nose returns the tip of the ship, where bullets leave
func (p Player) Nose(cfg Config) Vec2 {
	return p.Pos.Add(heading(p.Rotation).Scale(cfg.PlayerHeight / 2))
}

// Bullet is a fired round. Its hit box is the point Pos.
type Bullet struct {
	ID       EntityID
	Rotation float64
	Pos      Vec2
	Vel      Vec2
}

// Asteroid is a square rock of side Size centred on Pos
type Asteroid struct {
	ID   EntityID
	Size float64
	Pos  Vec2
	Vel  Vec2
}

// Box returns the asteroid's collision box
func (a Asteroid) Box() Rect {
	return RectAround(a.Pos, a.Size, a.Size)
}
