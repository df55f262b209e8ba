package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younwookim/climb/internal/application/game"
	"github.com/younwookim/climb/internal/application/replay"
	"github.com/younwookim/climb/internal/application/scene/playing"
	"github.com/younwookim/climb/internal/application/system"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		level  string
		record string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and play a level",
		Long: `Opens the game window on a level. Mouse motion moves the hand, the left
button holds on, A/D run, space jumps, R respawns and ESC pauses.
Levels named gen-<seed> are generated from the seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, seed, err := a.loadGame(level)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := a.logger()
			logger.Info("Starting",
				zap.String("level", cfg.Level.ID),
				zap.Int("surfaces", len(cfg.Level.Surfaces)))

			scene := playing.New(cfg, system.LoadLevel(cfg.Level), playing.Options{
				RecordPath: record,
				Seed:       seed,
				Logger:     logger,
			})
			g := game.New(scene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight, cfg.Physics.DT())
			return g.Run("Climb", scale)
		},
	}

	cmd.Flags().StringVar(&level, "level", "default", "level name, or gen-<seed>")
	cmd.Flags().StringVar(&record, "record", "", "record controls to this file (F5 saves early)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "window scale")

	return cmd
}

func newReplayCmd(a *app) *cobra.Command {
	var (
		watch bool
		scale float64
	)

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Play a recording back",
		Long:  `Runs a recording headlessly and prints the outcome, or shows it in a window with --watch.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}

			cfg, _, err := a.loadGame(data.Level)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			level := system.LoadLevel(cfg.Level)
			logger := a.logger()

			if watch {
				scene := playing.New(cfg, level, playing.Options{Replay: data, Logger: logger})
				g := game.New(scene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight, data.DT)
				return g.Run("Climb replay", scale)
			}

			result, err := replay.Run(data, system.NewSession(cfg.Physics, level, logger))
			if err != nil {
				return err
			}

			logger.Info("Replay finished",
				zap.Stringer("id", data.ID),
				zap.String("level", data.Level),
				zap.Int("frames", result.Frames))
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "show the replay in a window")
	cmd.Flags().Float64Var(&scale, "scale", 1, "window scale")

	return cmd
}

func printResult(cmd *cobra.Command, r replay.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:      %d\n", r.Frames)
	fmt.Fprintf(out, "final:       (%.4f, %.4f) %s\n", r.FinalPosition[0], r.FinalPosition[1], r.FinalState)
	fmt.Fprintf(out, "best height: %.4f\n", r.BestHeight)
	fmt.Fprintf(out, "jumps:       %d\n", r.Jumps)
	fmt.Fprintf(out, "grabs:       %d\n", r.Grabs)
	fmt.Fprintf(out, "releases:    %d\n", r.Releases)
}
