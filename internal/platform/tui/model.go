package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/storage"
)

// statusDuration is how long transient status messages stay visible.
const statusDuration = 3 * time.Second

type viewMode int

const (
	viewGame viewMode = iota
	viewScores
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	mode       viewMode
	scoreboard Scoreboard

	saveName    string
	statusMsg   string
	statusUntil time.Time

	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// saveName is the slot used when the player saves with Ctrl+S.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, saveName string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if saveName == "" {
		saveName = "quicksave"
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		saveName:   saveName,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == viewScores {
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b", "tab":
			m.mode = viewGame
			return m, nil
		}
		m.scoreboard = m.scoreboard.Update(msg)
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.openScoreboard()
		return m, nil
	case "ctrl+s":
		m.saveGame()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Restart only applies after game over.
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		delete(m.inputFrame.Actions, core.ActionRestart)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scoreboard = m.scoreboard.Resize(msg.Width, msg.Height)

	// The board survives resizes; only the layout changes.
	m.game.SetScreenSize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.mode == viewScores {
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score, m.game.MaxTile(), m.game.BoardSize())
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// openScoreboard loads scores and switches to the scoreboard view.
func (m *Model) openScoreboard() {
	var entries []storage.ScoreEntry
	if m.store != nil {
		if loaded, err := m.store.TopScores(maxScoreboardRows); err == nil {
			entries = loaded
		}
	}
	m.scoreboard = NewScoreboard(entries, m.config.ScreenW, m.config.ScreenH)
	m.mode = viewScores
}

// saveGame persists the current board under the model's save slot.
func (m *Model) saveGame() {
	if m.store == nil {
		m.setStatus("no database, cannot save")
		return
	}

	state, err := m.game.StateString()
	if err != nil {
		// Tiles above the encoding ceiling cannot be serialized.
		m.setStatus("cannot save: board has a tile above 99")
		return
	}

	if err := m.store.SaveGame(m.saveName, state, m.game.BoardSize(), m.gameState.Score); err != nil {
		m.setStatus("save failed")
		return
	}
	m.setStatus(fmt.Sprintf("saved as %q", m.saveName))
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == viewScores {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.statusMsg)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, saveName string) error {
	model := NewModel(g, store, cfg, saveName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
