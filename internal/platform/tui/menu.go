package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

const menuInfoWidth = 48

// MenuItem is a game the player can pick.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel lists the registered games with the highlighted game's
// instructions and the player's gem balance.
type MenuModel struct {
	games  []registry.GameInfo
	cursor int
	keys   MenuKeyMap
	help   help.Model

	gems    int
	hasGems bool

	width  int
	height int

	quitting   bool
	selected   *MenuItem
	wantScores bool
}

// NewMenuModel builds the picker. The balance is shown only when the
// services can report it.
func NewMenuModel(services *core.Services, userID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		games:  registry.List(),
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	if services != nil {
		m.gems, m.hasGems = services.GemBalance(context.Background(), userID)
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, max(len(m.games)-1, 0))
		case key.Matches(msg, m.keys.Play):
			if len(m.games) > 0 {
				g := m.games[m.cursor]
				m.selected = &MenuItem{GameID: g.ID, Title: g.Title}
			}
		case key.Matches(msg, m.keys.Scores):
			m.wantScores = true
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, g := range m.games {
		if i == m.cursor {
			list.WriteString(promptStyle.Render("▸ " + g.Title))
		} else {
			list.WriteString(dimStyle.Render("  " + g.Title))
		}
		list.WriteString("\n")
	}

	body := list.String()
	if len(m.games) > 0 {
		info := lipgloss.NewStyle().Width(menuInfoWidth).Render(m.games[m.cursor].Instructions)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", info)
	}

	header := "Pick a game"
	if m.hasGems {
		header = fmt.Sprintf("%s   %s", header, gemStyle.Render(fmt.Sprintf("◆ %d gems", m.gems)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerText(titleStyle.Render("  M A T H   A R C A D E  "), m.width),
		"",
		centerText(header, m.width),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(body)),
		"",
		centerText(m.help.View(m.keys), m.width),
	)
}

// Selected returns the picked game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantScores
}
