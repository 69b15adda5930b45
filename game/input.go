package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input represents the control inputs for one frame
type Input struct {
	TurnLeft  bool // A/Left arrow
	TurnRight bool // D/Right arrow
	Thrust    bool // W/Up arrow
	Fire      bool // Space
	Restart   bool // Enter, edge-triggered
	Quit      bool // Escape
}

// PollKeyboard reads the keyboard state for the current frame
func PollKeyboard() Input {
	return Input{
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Thrust:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Quit:      ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}
