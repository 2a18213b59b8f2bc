package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/games"
	"github.com/qbakra/escape-arcade/internal/level"
	"github.com/qbakra/escape-arcade/internal/platform/tui"
	"github.com/qbakra/escape-arcade/internal/session"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign in the current terminal.

Controls:
  Arrows/WASD - Move
  Space       - Jump / Flap / Fire
  Enter       - Confirm (buttons, continue)
  Mouse       - Click the on-screen buttons
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Extra lives and health, lower score targets
  normal - Config values as loaded
  hard   - Fewer lives, faster swarm, tighter gaps

Examples:
  escape play
  escape play --difficulty easy
  escape play --config ./my-campaign.yaml
  escape play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom campaign config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	bundle, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&bundle, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "escape"})
	sess := session.New(cfg, func(runCfg core.RuntimeConfig) []level.Level {
		return games.Campaign(runCfg, bundle)
	}, logger)

	if err := tui.Run(sess, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
