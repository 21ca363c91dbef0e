package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/board"
)

var (
	flagInspectSize int
	flagInspectMove string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <state>",
	Short: "Decode and inspect a board state string",
	Long: `Decode a compact board state string and print the board it encodes,
its score, and which moves are legal.

A state string is two digits per cell, row by row. A 4x4 board is
32 digits; empty cells are "00".

Examples:
  twenty48 inspect 02020000000000000000000000000000
  twenty48 inspect --size 3 020200000000000002
  twenty48 inspect --move left 02020000000000000000000000000000`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&flagInspectSize, "size", 4, "Board size the state encodes")
	inspectCmd.Flags().StringVar(&flagInspectMove, "move", "", "Also report whether this move would change the board (up, down, left, right)")
}

func runInspect(_ *cobra.Command, args []string) {
	b, err := board.FromState(args[0], flagInspectSize, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(b.String())
	fmt.Printf("Score:    %d\n", b.Score())
	fmt.Printf("Max tile: %d\n", b.MaxTile())

	moves := b.PossibleMoves()
	var legal []string
	for _, d := range board.Directions {
		if moves.Allows(d) {
			legal = append(legal, d.String())
		}
	}
	if len(legal) == 0 {
		fmt.Println("Moves:    none (game over)")
	} else {
		fmt.Printf("Moves:    %s\n", strings.Join(legal, ", "))
	}

	if flagInspectMove != "" {
		dir, err := board.ParseDirection(flagInspectMove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		changed, err := b.Move(dir, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if changed {
			fmt.Printf("Move %s:  legal\n", dir)
		} else {
			fmt.Printf("Move %s:  no effect\n", dir)
		}
	}
}
