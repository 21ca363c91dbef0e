package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twenty48/internal/storage"
)

// maxScoreboardRows is the most scores loaded into the scoreboard view.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11")).
	Padding(0, 1)

// Scoreboard renders the high-score table.
type Scoreboard struct {
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	empty  bool
}

// NewScoreboard builds a scoreboard view from score entries.
func NewScoreboard(entries []storage.ScoreEntry, width, height int) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Max Tile", Width: 9},
		{Title: "Board", Width: 6},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.MaxTile),
			fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 5
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	return Scoreboard{
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
		empty:  len(entries) == 0,
	}
}

// Update forwards navigation keys to the table.
func (s Scoreboard) Update(msg tea.KeyMsg) Scoreboard {
	s.table, _ = s.table.Update(msg)
	return s
}

// Resize adjusts the scoreboard to new terminal dimensions.
func (s Scoreboard) Resize(width, height int) Scoreboard {
	s.width = width
	s.height = height

	tableHeight := height - 5
	if tableHeight < 3 {
		tableHeight = 3
	}
	s.table.SetHeight(tableHeight)
	return s
}

// View renders the scoreboard.
func (s Scoreboard) View() string {
	title := scoreboardTitleStyle.Render("High Scores")

	var body string
	if s.empty {
		body = "\nNo scores recorded yet.\nFinish a game to set the first one."
	} else {
		body = s.table.View()
	}

	helpView := s.help.View(s.keys)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, helpView)
}
