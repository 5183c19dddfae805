package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/automoto/doomerang-siege/headless"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	flagFrames   int
	flagScript   string
	flagRealtime bool
	flagProfile  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a window",
	Long: `Play the level rotation headless from a scripted input and print a
summary. The same seed and script always produce the same checksum.

Scripts:
  idle    - Hold nothing
  patrol  - Walk a square firing ahead, swing and raise the shield

Examples:
  doomerang-siege simulate --frames 3600 --seed 7
  doomerang-siege simulate --script idle --realtime
  doomerang-siege simulate --profile cpu`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().StringVar(&flagScript, "script", "patrol", "Input script: idle, patrol")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	simulateCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu, mem")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, lvls, err := setup()
	if err != nil {
		return err
	}

	var script headless.Script
	switch flagScript {
	case "idle":
		script = headless.Idle
	case "patrol":
		script = headless.Patrol(flagTPS)
	default:
		return fmt.Errorf("unknown script %q", flagScript)
	}

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q", flagProfile)
	}

	runner, err := headless.NewRunner(game.Options{
		Levels:     lvls,
		Random:     gamemath.NewRand(flagSeed),
		Logger:     logger,
		TPS:        flagTPS,
		StartLevel: flagLevel,
	}, script)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sum, err := runner.Run(ctx, flagFrames, flagTPS, flagRealtime)
	if err != nil && err != context.Canceled {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:   %d\n", sum.Frames)
	fmt.Fprintf(out, "level:    %s (%d)\n", sum.Level, sum.LevelIndex)
	fmt.Fprintf(out, "state:    %s\n", sum.State)
	fmt.Fprintf(out, "rounds:   %d\n", sum.Rounds)
	fmt.Fprintf(out, "player:   alive=%t health=%d pos=(%.1f, %.1f)\n", sum.PlayerAlive, sum.PlayerHealth, sum.PlayerPos.X, sum.PlayerPos.Y)
	fmt.Fprintf(out, "entities: %d (hostiles %d)\n", sum.Entities, sum.Hostiles)
	for id := config.SoundID(0); id < config.SoundCount; id++ {
		if n := sum.Sounds[id]; n > 0 {
			fmt.Fprintf(out, "sound %-9s %d\n", id.String()+":", n)
		}
	}
	fmt.Fprintf(out, "checksum: %016x\n", sum.Checksum)
	return nil
}
