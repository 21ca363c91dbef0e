package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/storage"
)

var flagDeleteSave string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `List the saved games on this machine.

Games are saved in the TUI with Ctrl+S and resumed with
"twenty48 play --resume <name>".

Examples:
  twenty48 saves                    # List all saves
  twenty48 saves --delete quicksave # Delete a save`,
	Run: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDeleteSave, "delete", "", "Delete the named save")
}

func runSaves(_ *cobra.Command, _ []string) {
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

	if flagDeleteSave != "" {
		if err := store.DeleteSave(flagDeleteSave); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Save %q deleted.\n", flagDeleteSave)
		return
	}

	saves, err := store.ListSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading saves: %v\n", err)
		os.Exit(1)
	}

	if len(saves) == 0 {
		fmt.Println("No saved games. Press Ctrl+S while playing to save.")
		return
	}

	fmt.Println("Saved games:")
	fmt.Printf("%-16s %-8s %-6s %s\n", "Name", "Score", "Board", "Updated")
	for _, s := range saves {
		fmt.Printf("%-16s %-8d %-6s %s\n",
			s.Name, s.Score,
			fmt.Sprintf("%dx%d", s.BoardSize, s.BoardSize),
			s.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
