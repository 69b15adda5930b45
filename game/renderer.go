package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD layout
const (
	hudMargin      = 8.0
	hudLineHeight  = 16.0
	ammoBarWidth   = 120.0
	ammoBarHeight  = 8.0
	lifeIconSize   = 10.0
	lifeIconGap    = 6.0
	gameOverOffset = 24.0
)

var (
	colorHUDText  = color.NRGBA{R: 235, G: 235, B: 245, A: 255}
	colorAmmoBar  = color.NRGBA{R: 255, G: 200, B: 60, A: 255}
	colorAmmoBack = color.NRGBA{R: 60, G: 50, B: 20, A: 200}
	colorLife     = color.NRGBA{R: 120, G: 220, B: 140, A: 255}
	colorLifeLost = color.NRGBA{R: 70, G: 70, B: 80, A: 255}
	colorHitbox   = color.NRGBA{R: 255, G: 60, B: 60, A: 255}
	colorGameOver = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
)

// Renderer draws a session state. It never mutates it.
type Renderer struct {
	config  Config
	sprites *Sprites
	face    text.Face
	rng     *rand.Rand
}

// NewRenderer creates a new renderer. rng only drives cosmetic effects.
func NewRenderer(config Config, sprites *Sprites, rng *rand.Rand) *Renderer {
	return &Renderer{
		config:  config,
		sprites: sprites,
		face:    text.NewGoXFace(basicfont.Face7x13),
		rng:     rng,
	}
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, st *State, fps float64) {
	if st.Phase == PhaseGameOver {
		r.renderGameOver(screen, st)
		return
	}

	r.drawBackground(screen)
	for _, b := range st.World.Bullets {
		r.drawSprite(screen, r.sprites.Bullet, b.Pos, r.config.BulletSize, r.config.BulletSize, b.Rotation)
	}
	for _, a := range st.World.Asteroids {
		r.drawSprite(screen, r.sprites.Asteroid, a.Pos, a.Size, a.Size, 0)
	}
	p := st.Player
	r.drawSprite(screen, r.sprites.Player, p.Pos, r.config.PlayerWidth, r.config.PlayerHeight, p.Rotation)

	if GetDebugState().ShowHitboxes {
		r.drawHitboxes(screen, st)
	}
	r.drawHUD(screen, st, fps)
}

func (r *Renderer) drawBackground(screen *ebiten.Image) {
	b := r.sprites.Background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.config.ScreenWidth)/float64(b.Dx()), float64(r.config.ScreenHeight)/float64(b.Dy()))
	screen.DrawImage(r.sprites.Background, op)
}

// drawSprite draws img centred on pos, scaled to w×h and rotated by degrees
func (r *Renderer) drawSprite(screen, img *ebiten.Image, pos Vec2, w, h, degrees float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Rotate(degrees * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawHitboxes(screen *ebiten.Image, st *State) {
	stroke := func(box Rect) {
		vector.StrokeRect(screen, float32(box.MinX), float32(box.MinY),
			float32(box.MaxX-box.MinX), float32(box.MaxY-box.MinY), 1, colorHitbox, false)
	}
	stroke(st.Player.Hitbox(r.config))
	for _, a := range st.World.Asteroids {
		stroke(a.Box())
	}
}

// drawHUD draws the heads-up display: FPS and score on top, ammo and lives at the bottom
func (r *Renderer) drawHUD(screen *ebiten.Image, st *State, fps float64) {
	w := float64(r.config.ScreenWidth)
	h := float64(r.config.ScreenHeight)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", fps), int(hudMargin), int(hudMargin))
	r.drawText(screen, fmt.Sprintf("SCORE %d", st.Score), w-hudMargin, hudMargin, text.AlignEnd, colorHUDText)

	// Ammo gauge, bottom left
	barY := h - hudMargin - ammoBarHeight
	fill := 0.0
	if r.config.AmmoCapacity > 0 {
		fill = float64(st.Ammo) / float64(r.config.AmmoCapacity)
	}
	vector.DrawFilledRect(screen, float32(hudMargin), float32(barY), ammoBarWidth, ammoBarHeight, colorAmmoBack, false)
	vector.DrawFilledRect(screen, float32(hudMargin), float32(barY), float32(ammoBarWidth*fill), ammoBarHeight, colorAmmoBar, false)
	r.drawText(screen, fmt.Sprintf("AMMO %d/%d", st.Ammo, r.config.AmmoCapacity), hudMargin, barY-hudLineHeight, text.AlignStart, colorHUDText)

	// Lives gauge, bottom right
	for i := 0; i < r.config.StartLives; i++ {
		clr := colorLife
		if i >= st.Lives {
			clr = colorLifeLost
		}
		x := w - hudMargin - float64(i+1)*lifeIconSize - float64(i)*lifeIconGap
		vector.DrawFilledRect(screen, float32(x), float32(h-hudMargin-lifeIconSize), lifeIconSize, lifeIconSize, clr, false)
	}
	r.drawText(screen, "LIVES", w-hudMargin, h-hudMargin-lifeIconSize-hudLineHeight, text.AlignEnd, colorHUDText)
}

// renderGameOver draws the static game-over message over a flickering dark background
func (r *Renderer) renderGameOver(screen *ebiten.Image, st *State) {
	screen.Fill(color.RGBA{
		R: uint8(r.rng.Intn(24)),
		G: uint8(r.rng.Intn(16)),
		B: uint8(r.rng.Intn(40)),
		A: 255,
	})
	cx := float64(r.config.ScreenWidth) / 2
	cy := float64(r.config.ScreenHeight) / 2
	r.drawText(screen, "GAME OVER", cx, cy-gameOverOffset, text.AlignCenter, colorGameOver)
	r.drawText(screen, fmt.Sprintf("SCORE %d", st.Score), cx, cy, text.AlignCenter, colorHUDText)
	r.drawText(screen, "Press ENTER to restart, ESC to quit", cx, cy+gameOverOffset, text.AlignCenter, colorHUDText)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, r.face, op)
}
