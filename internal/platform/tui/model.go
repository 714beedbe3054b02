package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/session"
)

const feedbackDuration = 900 * time.Millisecond

// PlayModel is the Bubble Tea model for one game session.
type PlayModel struct {
	services *core.Services
	userID   string
	sess     *core.Session
	bus      *eventBus

	snap  session.Snapshot
	input textinput.Model
	keys  PlayKeyMap
	help  help.Model

	feedback   string
	feedbackID uint64
	inputErr   string
	gemsEarned int
	gemsKnown  bool
	balance    int
	hasBalance bool

	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a session for gameID played by userID.
func NewPlayModel(services *core.Services, gameID, userID string, cfg core.RuntimeConfig) (PlayModel, error) {
	bus := newEventBus()
	sess, err := services.NewSession(context.Background(), core.SessionOptions{
		GameID:   gameID,
		UserID:   userID,
		Seed:     cfg.Seed,
		OnChange: bus.publish,
		OnGems:   bus.publishGems,
	})
	if err != nil {
		return PlayModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "answer"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "› "

	m := PlayModel{
		services: services,
		userID:   userID,
		sess:     sess,
		bus:      bus,
		snap:     sess.Machine.Snapshot(),
		input:    ti,
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.refreshBalance()
	return m, nil
}

// Init starts listening for machine events.
func (m PlayModel) Init() tea.Cmd {
	return m.bus.wait()
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.applySnapshot(session.Snapshot(msg))
		return m, m.bus.wait()

	case GemsMsg:
		m.gemsEarned = int(msg)
		m.gemsKnown = true
		m.refreshBalance()
		return m, m.bus.wait()

	case FeedbackClearMsg:
		if msg.PuzzleID == m.feedbackID {
			m.feedback = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.snap.Phase {
	case session.PhaseTutorial:
		switch {
		case key.Matches(msg, m.keys.Start):
			_ = m.sess.Machine.Start()
			m.applySnapshot(m.sess.Machine.Snapshot())
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Back):
			m.leave()
		}
		return m, nil

	case session.PhasePlaying:
		switch {
		case key.Matches(msg, m.keys.Leave):
			m.leave()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.inputErr = ""
		return m, cmd

	case session.PhaseFinished:
		switch {
		case key.Matches(msg, m.keys.Restart):
			_ = m.sess.Machine.Restart()
			m.gemsEarned, m.gemsKnown = 0, false
			m.applySnapshot(m.sess.Machine.Snapshot())
		case key.Matches(msg, m.keys.Back):
			m.leave()
		case msg.String() == "q":
			m.leave()
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// submit parses the typed answer and hands it to the machine.
func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	if m.snap.Puzzle == nil || m.snap.Revealing {
		return m, nil
	}
	answer, err := ParseAnswer(*m.snap.Puzzle, m.input.Value())
	if err != nil {
		m.inputErr = err.Error()
		return m, nil
	}

	id := m.snap.PuzzleID
	out, err := m.sess.Machine.Answer(id, answer)
	if err != nil || !out.Accepted {
		return m, nil
	}

	switch {
	case out.Correct && out.LeveledUp:
		m.feedback = goodStyle.Render(fmt.Sprintf("Correct! +%d  Level up!", out.Points))
	case out.Correct:
		m.feedback = goodStyle.Render(fmt.Sprintf("Correct! +%d", out.Points))
	case out.GameOver:
		m.feedback = badStyle.Render("Wrong. Out of lives!")
	default:
		m.feedback = badStyle.Render("Wrong")
	}
	m.feedbackID = id
	m.input.SetValue("")
	m.applySnapshot(m.sess.Machine.Snapshot())

	return m, tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return FeedbackClearMsg{PuzzleID: id}
	})
}

// leave exits the machine, submitting an unfinished score once.
func (m *PlayModel) leave() {
	m.sess.Machine.Exit(func() { m.backToMenu = true })
	m.bus.stop()
}

func (m *PlayModel) applySnapshot(s session.Snapshot) {
	if s.PuzzleID != m.snap.PuzzleID {
		m.input.SetValue("")
		m.inputErr = ""
	}
	if s.Phase == session.PhasePlaying {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.snap = s
}

func (m *PlayModel) refreshBalance() {
	m.balance, m.hasBalance = m.services.GemBalance(context.Background(), m.userID)
}

// View renders the current phase.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.snap.Phase {
	case session.PhaseTutorial:
		body = m.viewTutorial()
	case session.PhasePlaying:
		body = m.viewPlaying()
	default:
		body = m.viewFinished()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.sess.Game.Title()), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(body)))
	b.WriteString("\n")
	return b.String()
}

func (m PlayModel) viewTutorial() string {
	var b strings.Builder
	b.WriteString(m.sess.Game.Instructions())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d levels. Answer correctly in a row to level up.", m.snap.LevelCount)))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Start, m.keys.Back, m.keys.Quit}))
	return b.String()
}

func (m PlayModel) viewPlaying() string {
	var b strings.Builder
	b.WriteString(renderStats(m.snap))
	b.WriteString("\n")
	if !m.snap.Revealing {
		b.WriteString(renderTimer(m.snap.TimeRemaining, m.snap.TimeTotal))
	}
	b.WriteString("\n\n")

	if m.snap.Puzzle != nil {
		b.WriteString(renderPuzzle(*m.snap.Puzzle, m.snap.Revealing))
	}
	b.WriteString("\n\n")

	if !m.snap.Revealing {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	switch {
	case m.inputErr != "":
		b.WriteString(badStyle.Render(m.inputErr))
	case m.feedback != "":
		b.WriteString(m.feedback)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Leave, m.keys.Quit}))
	return b.String()
}

func (m PlayModel) viewFinished() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Game over"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score     %d\n", m.snap.Score))
	b.WriteString(fmt.Sprintf("Correct   %d / %d\n", m.snap.Correct, m.snap.Answered))
	b.WriteString(fmt.Sprintf("Level     %d / %d\n\n", m.snap.LevelIndex+1, m.snap.LevelCount))

	switch {
	case m.snap.Score <= 0:
		b.WriteString(dimStyle.Render("No score to record."))
	case m.sess.Reconciler == nil:
		b.WriteString(dimStyle.Render("Scores are not being recorded."))
	case m.gemsKnown && m.gemsEarned > 0:
		b.WriteString(gemStyle.Render(fmt.Sprintf("New best! +%d gems", m.gemsEarned)))
	case m.gemsKnown:
		b.WriteString(dimStyle.Render("No gems this time. Beat your best to earn more."))
	default:
		b.WriteString(dimStyle.Render("Recording score..."))
	}
	if m.hasBalance {
		b.WriteString("\n")
		b.WriteString(gemStyle.Render(fmt.Sprintf("◆ %d gems", m.balance)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Back, m.keys.Quit}))
	return b.String()
}

// BackToMenu reports whether the player left the session.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// Wait blocks until the session's score submission has finished.
func (m PlayModel) Wait() {
	if m.sess != nil && m.sess.Reconciler != nil {
		m.sess.Reconciler.Wait()
	}
}

// standaloneModel quits the program when the player leaves the session.
type standaloneModel struct {
	PlayModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.PlayModel.Update(msg)
	m.PlayModel = next.(PlayModel)
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

// Run plays one game in the terminal and waits for its score to be
// recorded before returning.
func Run(services *core.Services, gameID, userID string, cfg core.RuntimeConfig) error {
	model, err := NewPlayModel(services, gameID, userID, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(standaloneModel{model}, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(standaloneModel); ok {
		fm.leave()
		fm.Wait()
	}
	return err
}
