package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twenty48/internal/board"
	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/platform/tui"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var (
	flagSize   int
	flagTarget int
	flagState  string
	flagResume string
	flagSaveAs string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Shift tiles
  P                - Pause
  Ctrl+S           - Save game
  Tab              - Scoreboard
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 play --state 02020000000000000000000000000000
  twenty48 play --resume evening --save-as evening`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (default from config)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Win target tile (default from config)")
	playCmd.Flags().StringVar(&flagState, "state", "", "Start from a board state string")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume a saved game by name")
	playCmd.Flags().StringVar(&flagSaveAs, "save-as", "quicksave", "Save slot used by Ctrl+S")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := cfg.Board.Size
	if flagSize != 0 {
		size = flagSize
	}
	if size < 2 {
		fmt.Fprintf(os.Stderr, "Error: board size %d is below the minimum of 2\n", size)
		os.Exit(1)
	}

	target := cfg.Board.WinTarget
	if flagTarget != 0 {
		target = flagTarget
	}

	if flagState != "" && flagResume != "" {
		fmt.Fprintln(os.Stderr, "Error: --state and --resume are mutually exclusive")
		os.Exit(1)
	}

	// Open score/save storage early; resuming needs it.
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	startState := flagState
	if flagResume != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: cannot resume without a database")
			os.Exit(1)
		}
		save, loadErr := store.LoadGame(flagResume)
		if loadErr != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		if save == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: no saved game named %q\n", flagResume)
			fmt.Fprintln(os.Stderr, "Run 'twenty48 saves' to list saved games.")
			os.Exit(1)
		}
		startState = save.State
		size = save.BoardSize
	}

	if startState != "" {
		// Validate before entering the UI so a bad encoding fails loudly.
		if _, stateErr := board.FromState(startState, size, nil); stateErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", stateErr)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetBoardSize(size)
	game.SetWinTarget(target)
	game.SetStartState(startState)

	runErr := tui.Run(game.New(), store, runtimeCfg, flagSaveAs)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
