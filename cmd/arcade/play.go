package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/games/blockgame"
	"github.com/vovakirdan/paddle-arcade/internal/games/versus"
	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S/A/D, Space   - Player 1 move, launch
  Arrows, Enter    - Player 2 move, launch
  P                - Pause
  R                - Restart
  Esc              - Leave (when paused or game over)
  Q/Ctrl+C         - Quit

Single-player games accept either key set.

Difficulty options:
  easy   - Bigger, faster paddles and a slower ball ramp
  normal - Config values as they are
  hard   - Smaller, slower paddles and a faster ball ramp
  fixed  - Block game only: no serve speed progression

Examples:
  arcade play blockgame
  arcade play pong --difficulty easy
  arcade play tennis --config ./my-tennis.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game packages.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	blockgame.SetConfigPath(flagConfig)
	blockgame.SetDifficultyPreset(flagDifficulty)
	versus.SetConfigPath(flagConfig)
	versus.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(nil, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pm := registry.NewPackManager(a.env())
	game, err := pm.LoadIntoPack(gameID)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, a.options())
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
