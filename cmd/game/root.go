package main

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/climb/internal/infrastructure/config"
	"github.com/younwookim/climb/internal/infrastructure/levelgen"
	"github.com/younwookim/climb/internal/observability"
)

const (
	envPrefix      = "CLIMB"
	generatedLevel = "gen-"
)

// app carries the settings shared by all subcommands
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "climb",
		Short:         "Arm-climbing platformer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.Initialize(a.loggerConfig(), zapcore.Lock(os.Stderr))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config-dir", "", "directory with physics.json and levels/ (default: embedded configs)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console or json)")
	flags.String("log-file", "", "also write JSON logs to this rotated file")

	for key, name := range map[string]string{
		"config_dir": "config-dir",
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newGenLevelCmd(a))

	return rootCmd
}

func (a *app) loggerConfig() config.LoggerConfig {
	return config.LoggerConfig{
		Level:       a.v.GetString("log.level"),
		Format:      a.v.GetString("log.format"),
		ServiceName: "climb",
		LogFile:     a.v.GetString("log.file"),
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      7,
	}
}

func (a *app) logger() *zap.Logger {
	return observability.GetLogger()
}

// loader reads configs from --config-dir, or the embedded defaults
func (a *app) loader() (*config.Loader, error) {
	if dir := a.v.GetString("config_dir"); dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadGame loads physics and the named level. Names of the form gen-<seed>
// are generated instead of read from disk.
func (a *app) loadGame(level string) (*config.GameConfig, int64, error) {
	loader, err := a.loader()
	if err != nil {
		return nil, 0, err
	}

	seed, generated, err := parseGeneratedLevel(level)
	if err != nil {
		return nil, 0, err
	}
	if !generated {
		cfg, err := loader.LoadAll(level)
		return cfg, 0, err
	}

	physics, err := loader.LoadPhysics()
	if err != nil {
		return nil, 0, err
	}
	return &config.GameConfig{
		Physics: physics,
		Level:   levelgen.Generate(levelgen.DefaultParams(seed)),
	}, seed, nil
}

func parseGeneratedLevel(level string) (int64, bool, error) {
	rest, ok := strings.CutPrefix(level, generatedLevel)
	if !ok {
		return 0, false, nil
	}
	seed, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid generated level %q: %w", level, err)
	}
	return seed, true, nil
}
