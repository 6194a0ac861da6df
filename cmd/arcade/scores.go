package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the hall of fame and the most recent best runs for a game.

Without a game, or with --tui, opens the interactive scoreboard.

Examples:
  arcade scores blockgame
  arcade scores pong --limit 20
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recorded runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	a, err := newApp(nil, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.store == nil {
		fmt.Fprintf(os.Stderr, "Error: no scores database at %s\n", viper.GetString("db"))
		os.Exit(1)
	}

	if flagScoresTUI || len(args) == 0 {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(a.store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	fmt.Printf("Hall of Fame - %s\n", info.Title)
	fmt.Println()

	table, err := a.store.LoadHighScores(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving hall of fame: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, e := range table.Entries() {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
	}

	fmt.Println()
	fmt.Println("Recorded runs")
	fmt.Println()

	scores, err := a.store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	fmt.Println()
	if best, err := a.store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
