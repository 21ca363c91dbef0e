package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Show the top 10 scores recorded on this machine.

Examples:
  twenty48 scores          # Print the scoreboard
  twenty48 scores --clear  # Wipe all recorded scores`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	entries, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet. Play a game first!")
		return
	}

	fmt.Println("Top scores:")
	fmt.Printf("%-5s %-8s %-9s %-6s %s\n", "Rank", "Score", "Max Tile", "Board", "Date")
	for i, e := range entries {
		fmt.Printf("%-5d %-8d %-9d %-6s %s\n",
			i+1, e.Score, e.MaxTile,
			fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore()
	if err == nil && best > 0 {
		fmt.Printf("\nBest: %d\n", best)
	}
}
