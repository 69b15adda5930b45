// space-evasion is a 2D arcade game: steer the ship, shoot or dodge the
// asteroids, and survive as long as the ammo lasts.
//
// Usage:
//
//	space-evasion                 - Play in a window
//	space-evasion sim             - Run a headless autopilot session
//
// Global flags:
//
//	--config <file>      - YAML overrides for gameplay constants
//	--seed <value>       - RNG seed (0 = time based)
//	--log-level <level>  - debug, info, warn or error
//	--cpuprofile <file>  - Write a CPU profile
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"spaceevasion/game"
)

var (
	flagConfig     string
	flagSeed       int64
	flagLogLevel   string
	flagCPUProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "space-evasion",
	Short: "Space Evasion - dodge and shoot asteroids",
	Long: `Space Evasion puts you in a ship surrounded by incoming asteroids.

Controls:
  Left/Right, A/D  - Rotate
  Up, W            - Thrust
  Space            - Fire
  Enter            - Restart (after game over)
  F1               - Toggle hitboxes
  Esc              - Quit`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a gameplay config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagCPUProfile, "cpuprofile", "", "Write a CPU profile to this file")

	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger at the requested level
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "space-evasion",
		Level:           lvl,
	}), nil
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// setup loads the logger and config shared by every command
func setup() (*log.Logger, game.Config, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, game.Config{}, err
	}
	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		return nil, game.Config{}, err
	}
	return logger, cfg, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, cfg, err := setup()
	if err != nil {
		return err
	}

	stop, err := startCPUProfile(flagCPUProfile, logger)
	if err != nil {
		return err
	}
	defer stop()

	sprites, err := game.LoadSprites()
	if err != nil {
		return fmt.Errorf("failed to load sprites: %w", err)
	}

	g := game.NewGame(cfg, sprites, newRNG(flagSeed), logger)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Evasion")

	logger.Info("starting game", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
