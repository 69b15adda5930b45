package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spaceevasion/game"
)

var (
	flagFrames    int
	flagFrameRate int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session driven by the autopilot",
	Long: `Run the game without a window. The autopilot turns toward the nearest
asteroid and fires when lined up; time advances one frame per step, so a
given --seed always produces the same run.

Examples:
  space-evasion sim
  space-evasion sim --frames 10000 --seed 42 --log-level debug
  space-evasion sim --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagFrameRate, "fps", 60, "Simulated frames per second")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 || flagFrameRate <= 0 {
		return fmt.Errorf("frames and fps must be positive, got %d and %d", flagFrames, flagFrameRate)
	}

	logger, cfg, err := setup()
	if err != nil {
		return err
	}

	stop, err := startCPUProfile(flagCPUProfile, logger)
	if err != nil {
		return err
	}
	defer stop()

	clock := game.NewFrameClock(time.Unix(0, 0), time.Second/time.Duration(flagFrameRate))
	session := game.NewSession(cfg, clock, newRNG(flagSeed), logger)
	pilot := game.NewAutopilot()

	var spawned, fired, destroyed, escaped, hits int
	for i := 0; i < flagFrames; i++ {
		ev := session.Step(pilot.Input(&session.State, cfg))
		if ev.Spawned {
			spawned++
		}
		if ev.Fired {
			fired++
		}
		destroyed += len(ev.Collisions.Destroyed)
		escaped += len(ev.Collisions.Escaped)
		hits += len(ev.Collisions.PlayerHits)
		if ev.GameOver {
			break
		}
		clock.Tick()
	}

	st := session.State
	logger.Info("simulation finished",
		"frames", st.Frame,
		"phase", st.Phase,
		"score", st.Score,
		"lives", st.Lives,
		"ammo", st.Ammo,
		"spawned", spawned,
		"fired", fired,
		"destroyed", destroyed,
		"escaped", escaped,
		"hits", hits,
	)
	return nil
}
