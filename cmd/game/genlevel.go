package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younwookim/climb/internal/infrastructure/config"
	"github.com/younwookim/climb/internal/infrastructure/levelgen"
)

func newGenLevelCmd(a *app) *cobra.Command {
	var (
		seed   int64
		out    string
		ledges int
	)

	cmd := &cobra.Command{
		Use:   "genlevel",
		Short: "Generate a level from a seed and write it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := levelgen.DefaultParams(seed)
			if cmd.Flags().Changed("ledges") {
				params.Ledges = ledges
			}
			level := levelgen.Generate(params)

			if out == "" {
				return config.WriteLevel(cmd.OutOrStdout(), level)
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			defer func() { _ = file.Close() }()

			if err := config.WriteLevel(file, level); err != nil {
				return err
			}
			a.logger().Info("Level written",
				zap.String("path", out),
				zap.String("id", level.ID),
				zap.Int("surfaces", len(level.Surfaces)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "noise seed")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&ledges, "ledges", 0, "number of ledges (default: generator default)")

	return cmd
}
