package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/gridgame-go/internal/factory"
	"github.com/mcoot/gridgame-go/internal/model"
)

var (
	cfg *Config
	app *factory.App
)

// flagValues holds raw flag values until they are layered over the loaded
// config
type flagValues struct {
	configPath string
	output     string
	verbose    bool
	logFile    string
	logLevel   string
	width      int
	height     int
	disks      int
	towers     string
}

var flags flagValues

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	flags = flagValues{
		output:   OutputText,
		logLevel: "warn",
		width:    model.DefaultBoardWidth,
		height:   model.DefaultBoardHeight,
		disks:    model.DefaultDiskCount,
		towers:   model.DefaultTowerNames,
	}

	rootCmd := &cobra.Command{
		Use:   "gridgame",
		Short: "Play turn-based grid games in the terminal",
		Long: `gridgame plays console grid games against a friend or on your own.

fourinarow is the classic two player drop game on a 7x6 board.
hanoi is the Tower of Hanoi puzzle with a configurable number of disks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, loaded)
			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded

			level, _ := cfg.Level()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			app, err = factory.New(factory.Config{
				Logger:     logger,
				LedgerPath: cfg.LogFile,
			})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", flags.output, "Output format: text, json (env: GRIDGAME_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append game events to this file (env: GRIDGAME_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", flags.logLevel, "Log level: debug, info, warn, error (env: GRIDGAME_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newFourInARowCmd())
	rootCmd.AddCommand(newHanoiCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// applyFlags overrides loaded settings with flags given on the command line
func applyFlags(cmd *cobra.Command, c *Config) {
	if changed(cmd, "output") {
		c.Output = flags.output
	}
	if changed(cmd, "verbose") {
		c.Verbose = flags.verbose
	}
	if changed(cmd, "log-file") {
		c.LogFile = flags.logFile
	}
	if changed(cmd, "log-level") {
		c.LogLevel = flags.logLevel
	}
	if changed(cmd, "width") {
		c.Width = flags.width
	}
	if changed(cmd, "height") {
		c.Height = flags.height
	}
	if changed(cmd, "disks") {
		c.Disks = flags.disks
	}
	if changed(cmd, "towers") {
		c.Towers = flags.towers
	}
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
