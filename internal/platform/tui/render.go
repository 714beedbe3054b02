package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-arcade/internal/games/pyramid"
	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/session"
)

const timerBarWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	heartStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	gemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	memoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cellStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	hiddenStyle  = cellStyle.BorderForeground(lipgloss.Color("11"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderHearts draws the remaining lives.
func renderHearts(s session.Snapshot) string {
	if !s.HeartsEnabled {
		return ""
	}
	return heartStyle.Render(strings.Repeat("♥", s.Hearts)) +
		dimStyle.Render(strings.Repeat("♡", session.MaxHearts-s.Hearts))
}

// renderTimer draws the clock as a bar plus seconds left.
func renderTimer(remaining, total time.Duration) string {
	if total <= 0 {
		return ""
	}
	frac := float64(remaining) / float64(total)
	frac = max(0, min(frac, 1))
	filled := int(frac*timerBarWidth + 0.5)

	style := barFullStyle
	if frac < 0.25 {
		style = barLowStyle
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", timerBarWidth-filled))
	return fmt.Sprintf("%s %4.1fs", bar, remaining.Seconds())
}

// renderStats draws the level, score and streak line.
func renderStats(s session.Snapshot) string {
	parts := []string{
		fmt.Sprintf("Level %d/%d", s.LevelIndex+1, s.LevelCount),
		fmt.Sprintf("Score %d", s.Score),
		fmt.Sprintf("Streak %d", s.CorrectStreak),
	}
	if h := renderHearts(s); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, dimStyle.Render("  │  "))
}

// renderPuzzle draws the question body for its kind.
func renderPuzzle(p puzzle.Instance, revealing bool) string {
	if revealing {
		var b strings.Builder
		b.WriteString(dimStyle.Render("Memorize:"))
		b.WriteString("\n\n")
		for _, line := range p.Memo {
			b.WriteString(memoStyle.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(p.Prompt))
	b.WriteString("\n\n")

	switch p.Kind {
	case puzzle.KindChoice:
		b.WriteString(renderOptions(p))
	case puzzle.KindSelect:
		b.WriteString(renderGrid(p.Cells, 3))
		b.WriteString(dimStyle.Render("\nEnter cell numbers, e.g. 1 5 9"))
	case puzzle.KindPairs:
		b.WriteString(renderCards(p.Labels))
		b.WriteString(dimStyle.Render("\nEnter card numbers two by two, e.g. 1 4 2 6"))
	case puzzle.KindPlace:
		b.WriteString(renderTriangle())
		b.WriteString("\nNumbers: " + joinInts(p.Cells, " "))
		b.WriteString(dimStyle.Render("\nEnter the numbers for slots A-F in order"))
	case puzzle.KindFill:
		b.WriteString(renderPyramid(p))
		b.WriteString(dimStyle.Render("\nEnter the ? blocks left to right, bottom row first"))
	}
	return b.String()
}

func renderOptions(p puzzle.Instance) string {
	opts := make([]string, len(p.Options))
	for i, v := range p.Options {
		text := fmt.Sprint(v)
		if i < len(p.Labels) {
			text = p.Labels[i]
		}
		opts[i] = cellStyle.Render(fmt.Sprintf("%c) %s", 'a'+rune(i), text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

func renderGrid(cells []int, cols int) string {
	var rows []string
	for start := 0; start < len(cells); start += cols {
		var row []string
		for i := start; i < min(start+cols, len(cells)); i++ {
			row = append(row, cellStyle.Render(fmt.Sprintf("%s %3d", dimStyle.Render(fmt.Sprint(i+1)), cells[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCards(labels []string) string {
	cards := make([]string, len(labels))
	for i, l := range labels {
		cards[i] = cellStyle.Render(fmt.Sprintf("%s %s", dimStyle.Render(fmt.Sprintf("%d:", i+1)), l))
	}
	half := (len(cards) + 1) / 2
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:half]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[half:]...),
	)
}

// renderTriangle draws the six slots: corners A, C, E and the middles
// between them.
func renderTriangle() string {
	return strings.Join([]string{
		"        A",
		"      F   B",
		"    E   D   C",
	}, "\n")
}

// renderPyramid draws the rows top down; hidden blocks show as ?.
func renderPyramid(p puzzle.Instance) string {
	hidden := make(map[int]bool, len(p.Hidden))
	for _, h := range p.Hidden {
		hidden[h] = true
	}

	var rows []string
	for r := len(pyramid.RowOffsets) - 1; r >= 0; r-- {
		var row []string
		for i := pyramid.RowOffsets[r]; i < pyramid.RowOffsets[r]+pyramid.Base-r && i < len(p.Cells); i++ {
			if hidden[i] {
				row = append(row, hiddenStyle.Render("  ?"))
			} else {
				row = append(row, cellStyle.Render(fmt.Sprintf("%3d", p.Cells[i])))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func joinInts(vals []int, sep string) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, sep)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
