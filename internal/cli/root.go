// Package cli implements the spatial command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akmonengine/spatial/internal/config"
	"github.com/akmonengine/spatial/internal/log"
	"github.com/akmonengine/spatial/rotation"
)

// RootOptions holds global flags and the state resolved from them before a command runs.
type RootOptions struct {
	ConfigPath string
	Format     string
	Units      string
	Precision  int
	Verbose    bool

	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "spatial",
		Short: "Quaternion, Euler angle and coordinate transform calculator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.Logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Units, "units", config.UnitsRadians, "angle units (rad|deg)")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", 6, "decimal places in output")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(NewQuatCommand(opts))
	cmd.AddCommand(NewEulerCommand(opts))
	cmd.AddCommand(NewTransformCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolve layers explicitly set flags over the config file and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("units") {
		cfg.Units = o.Units
	}
	if flags.Changed("precision") {
		cfg.Precision = o.Precision
	}
	if o.Verbose {
		cfg.LogLevel = string(log.LevelDebug)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	o.Config = cfg
	o.Logger = logger.Named(cmd.Name())
	o.Logger.Debug("configuration resolved",
		zap.String("config", o.ConfigPath),
		zap.String("units", cfg.Units),
		zap.String("format", cfg.Format),
		zap.Int("precision", cfg.Precision),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

// toRadians converts an angle given in the configured units.
func (o *RootOptions) toRadians(angle float64) float64 {
	if o.Config.Units == config.UnitsDegrees {
		return rotation.DegToRad(angle)
	}
	return angle
}

// fromRadians converts an angle to the configured units.
func (o *RootOptions) fromRadians(angle float64) float64 {
	if o.Config.Units == config.UnitsDegrees {
		return rotation.RadToDeg(angle)
	}
	return angle
}

// run logs a failed command before handing the error back to cobra.
func (o *RootOptions) run(fn func() error) error {
	if err := fn(); err != nil {
		o.Logger.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func (o *RootOptions) printer(cmd *cobra.Command) printer {
	return printer{
		format:    o.Config.Format,
		precision: o.Config.Precision,
		w:         cmd.OutOrStdout(),
	}
}
