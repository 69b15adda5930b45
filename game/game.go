package game

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game hosts a Session in an ebiten window
type Game struct {
	config   Config
	session  *Session
	renderer *Renderer
	fps      *FPSMeter
	logger   *log.Logger
}

// NewGame creates a new game instance reading time from the wall clock
func NewGame(config Config, sprites *Sprites, rng *rand.Rand, logger *log.Logger) *Game {
	return &Game{
		config:   config,
		session:  NewSession(config, SystemClock{}, rng, logger),
		renderer: NewRenderer(config, sprites, rand.New(rand.NewSource(rng.Int63()))),
		fps:      NewFPSMeter(config.FPSSamples),
		logger:   logger,
	}
}

// Update polls input and advances the session by one frame.
// Escape ends the game loop from any phase.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowHitboxes = !debugState.ShowHitboxes
	}

	g.fps.Sample(ebiten.ActualFPS())

	in := PollKeyboard()
	if in.Quit {
		g.logger.Info("quit requested", "score", g.session.State.Score)
		return ebiten.Termination
	}
	g.session.Step(in)
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, &g.session.State, g.fps.Average())
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
