// twenty48 is a terminal 2048: play locally, serve over SSH, and keep
// scores and saved games in a local database.
//
// Usage:
//
//	twenty48 play                - Play in the terminal
//	twenty48 serve               - Start SSH server for remote play
//	twenty48 scores              - Show high scores
//	twenty48 saves               - List saved games
//	twenty48 inspect <state>     - Decode and print a board state string
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Database path (default from config)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 in your terminal",
	Long: `twenty48 is a terminal rendition of the 2048 sliding-tile puzzle.

Merge equal tiles by shifting the board, reach 2048, and keep going.
Scores and saved games live in a local SQLite database; the serve
command exposes the game over SSH so others can play remotely.

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 play --resume evening
  twenty48 serve --ssh :2222
  twenty48 scores
  twenty48 inspect 02020000000000000000000000000000`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}
