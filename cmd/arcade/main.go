// arcade is a terminal arcade of paddle games: a block breaker, Pong and
// Tennis.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade settings          - Show or change audio settings
//
// Global flags (also ARCADE_* environment variables or ~/.arcade/arcade.yaml):
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Write a rotated log file
//	--log-level <level> - debug, info, warn, error
//	--mute              - Disable audio
//	--name <player>     - Name used in the score tables
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import games to register them
	_ "github.com/vovakirdan/paddle-arcade/internal/games/blockgame"
	_ "github.com/vovakirdan/paddle-arcade/internal/games/versus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Paddle Arcade - block breaking, Pong and Tennis in your terminal",
	Long: `Paddle Arcade is a terminal arcade of paddle games.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  settings  - Show or change audio settings

Examples:
  arcade list
  arcade play blockgame
  arcade play pong --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores tennis`,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", "~/.arcade/scores.db", "Path to scores database")
	pf.String("log-file", "", "Write logs to this file (rotated)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.Bool("mute", false, "Disable audio")
	pf.String("name", defaultPlayerName(), "Player name for the score tables")

	for _, name := range []string{"fps", "seed", "db", "log-file", "log-level", "mute", "name"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// initConfig layers ARCADE_* variables and ~/.arcade/arcade.yaml under the
// command-line flags.
func initConfig() error {
	viper.SetEnvPrefix("arcade")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("arcade")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".arcade"))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read settings: %w", err)
		}
	}
	return nil
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "Player 1"
}
