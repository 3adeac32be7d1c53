package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/mole-strike/config"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mole-strike",
		Short: "Terminal whack-a-mole",
		Long: `mole-strike is a timed reaction game for the terminal.

Moles pop out of a grid of holes; hit them with the mouse or the digit
keys before they hide. A session lasts 30 seconds and the best score
is kept between runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGame(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.mole-strike/config.yaml)")
	flags.Int("hold", 0, "Mole hold time in milliseconds")
	flags.Int("rows", 0, "Grid rows")
	flags.Int("cols", 0, "Grid columns")
	flags.String("store", "", "Best score backend: file or sqlite")
	flags.String("data-dir", "", "Directory for the best score and config")
	flags.Bool("no-sound", false, "Disable sound effects")
	flags.Bool("debug", false, "Write a debug log to logs/mole-strike.log")
	flags.Bool("record-stopped", false, "Let a stopped session set a new best")

	rootCmd.AddCommand(
		newPlayCmd(),
		newBestCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// resolveConfig loads the configuration and applies the flags the user set
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("hold") {
		cfg.Game.HoldMS, _ = flags.GetInt("hold")
	}
	if flags.Changed("rows") {
		cfg.Game.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("cols") {
		cfg.Game.Cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("store") {
		cfg.Storage.Backend, _ = flags.GetString("store")
	}
	if flags.Changed("data-dir") {
		cfg.Storage.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("no-sound") {
		noSound, _ := flags.GetBool("no-sound")
		cfg.Audio.Enabled = !noSound
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("record-stopped") {
		cfg.Game.RecordStopped, _ = flags.GetBool("record-stopped")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the game (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGame(cfg)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mole-strike version %s\n", version)
		},
	}
}
