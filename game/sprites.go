package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed assets/background.png
	backgroundPNG []byte

	//go:embed assets/player.png
	playerPNG []byte

	//go:embed assets/bullet.png
	bulletPNG []byte

	//go:embed assets/asteroid.png
	asteroidPNG []byte
)

// Sprites holds the textures, loaded once for the life of the process
type Sprites struct {
	Background *ebiten.Image
	Player     *ebiten.Image
	Bullet     *ebiten.Image
	Asteroid   *ebiten.Image
}

type spriteImages struct {
	background, player, bullet, asteroid image.Image
}

// decodeSprites decodes the embedded PNGs
func decodeSprites() (spriteImages, error) {
	var imgs spriteImages
	assets := []struct {
		name string
		data []byte
		dst  *image.Image
	}{
		{"background.png", backgroundPNG, &imgs.background},
		{"player.png", playerPNG, &imgs.player},
		{"bullet.png", bulletPNG, &imgs.bullet},
		{"asteroid.png", asteroidPNG, &imgs.asteroid},
	}
	for _, a := range assets {
		img, err := png.Decode(bytes.NewReader(a.data))
		if err != nil {
			return imgs, fmt.Errorf("decode %s: %w", a.name, err)
		}
		*a.dst = img
	}
	return imgs, nil
}

// LoadSprites converts the embedded assets to ebiten images
func LoadSprites() (*Sprites, error) {
	imgs, err := decodeSprites()
	if err != nil {
		return nil, err
	}
	return &Sprites{
		Background: ebiten.NewImageFromImage(imgs.background),
		Player:     ebiten.NewImageFromImage(imgs.player),
		Bullet:     ebiten.NewImageFromImage(imgs.bullet),
		Asteroid:   ebiten.NewImageFromImage(imgs.asteroid),
	}, nil
}
