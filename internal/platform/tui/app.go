package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/core"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenScores
)

// AppModel manages the full arcade flow: menu -> game or scoreboard ->
// menu. It is the top-level model for `arcade menu` and SSH sessions.
type AppModel struct {
	services *core.Services
	scores   ScoreSource
	userID   string
	config   core.RuntimeConfig

	screen   screen
	menu     MenuModel
	play     PlayModel
	board    ScoreboardModel
	quitting bool

	active *activeSessions
}

// activeSessions tracks the sessions an AppModel started so the owner can
// stop them when the program or connection ends.
type activeSessions struct {
	mu    sync.Mutex
	plays []PlayModel
}

func (a *activeSessions) add(p PlayModel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.plays = append(a.plays, p)
}

// Shutdown exits every session, submitting an unfinished score once, and
// waits for pending submissions.
func (a *activeSessions) Shutdown() {
	a.mu.Lock()
	plays := a.plays
	a.plays = nil
	a.mu.Unlock()

	for i := range plays {
		plays[i].leave()
		plays[i].Wait()
	}
}

// NewAppModel creates the top-level model for userID.
func NewAppModel(services *core.Services, scores ScoreSource, userID string, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		services: services,
		scores:   scores,
		userID:   userID,
		config:   cfg,
		menu:     NewMenuModel(services, userID, cfg),
		active:   &activeSessions{},
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.scores, m.services, m.userID, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		play, err := NewPlayModel(m.services, m.menu.Selected().GameID, m.userID, m.config)
		if err != nil {
			m.menu = NewMenuModel(m.services, m.userID, m.config)
			return m, nil
		}
		m.play = play
		m.active.add(play)
		m.screen = screenPlay
		return m, m.play.Init()
	}
	return m, cmd
}

func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.play = next.(PlayModel)

	switch {
	case m.play.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.play.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.services, m.userID, m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Shutdown stops every session the model started. It is safe to call
// from any goroutine.
func (m AppModel) Shutdown() {
	m.active.Shutdown()
}

// RunMenu runs the interactive arcade until the player quits.
func RunMenu(services *core.Services, scores ScoreSource, userID string, cfg core.RuntimeConfig) error {
	model := NewAppModel(services, scores, userID, cfg)
	defer model.Shutdown()

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
