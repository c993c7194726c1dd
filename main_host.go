//go:build !tinygo

// lcdtris is a falling-block puzzle for a 128x160 LCD and four buttons.
//
// Usage:
//
//	lcdtris                  - Play in a window (arrows/space/R, or A/W/D/Backspace)
//	lcdtris --headless       - Run the game loop without a window
//	lcdtris version          - Print build information
//
// Flags:
//
//	--config <path>  - YAML config (default: ~/.lcdtris/config.yaml, ./configs/lcdtris.yaml)
//	--hz <rate>      - Timer tick rate (overrides timer.hz)
//	--seed <value>   - Randomizer seed (0 = from the clock)
//	--ticks <n>      - Stop a headless run after n ticks
//	--fast           - Headless: deliver ticks without waiting
//	--scale <n>      - Window zoom factor
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lcdtris/app"
	"lcdtris/config"
	"lcdtris/hal"
	"lcdtris/internal/buildinfo"
)

var (
	flagConfig   string
	flagHeadless bool
	flagHz       int
	flagSeed     uint32
	flagTicks    uint64
	flagFast     bool
	flagScale    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "lcdtris",
	Short:         "Falling-block puzzle for a small LCD, simulated on the desktop",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.String())
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a window")
	rootCmd.Flags().IntVar(&flagHz, "hz", 0, "Timer tick rate (0 = from config)")
	rootCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "Randomizer seed (0 = from the clock)")
	rootCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever)")
	rootCmd.Flags().BoolVar(&flagFast, "fast", false, "Headless: do not wait between ticks")
	rootCmd.Flags().IntVar(&flagScale, "scale", 3, "Window zoom factor")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagHz > 0 {
		cfg.Timer.Hz = flagHz
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	hcfg := hal.Config{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Hz:     cfg.Timer.Hz,
		Scale:  flagScale,
	}

	var sys *app.System
	newApp := func(h hal.HAL) func() error {
		s, err := app.Start(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		sys = s
		return s.Step
	}

	if !flagHeadless {
		return hal.RunWindow(hcfg, newApp)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	err = hal.RunHeadless(ctx, hcfg, hal.HeadlessConfig{Ticks: flagTicks, Fast: flagFast}, newApp)
	if sys != nil {
		st := sys.Stats()
		log.Info("headless run finished", "ticks", st.Ticks, "state", st.State, "score", st.Score, "lines", st.Lines)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
