package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Leaderboard layout constants
const (
	maxRuns       = 50 // Max runs to load
	boardChrome   = 8  // Title, stats, borders and help
	minBoardRows  = 3
	playerColumn  = 16
	minTableWidth = 50
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
)

// leaderboard is the overlay listing the best runs of the process.
type leaderboard struct {
	store  *storage.Store
	table  table.Model
	runs   []storage.Run
	stats  storage.Stats
	err    error
	width  int
	height int
}

func newLeaderboard(store *storage.Store, width, height int) leaderboard {
	b := leaderboard{store: store, width: width, height: height}
	b.table = b.createTable()
	b.refresh()
	return b
}

// createTable creates a table sized to the current window.
func (b *leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: playerColumn},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Finished", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-boardChrome, minBoardRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refresh reloads runs and stats from the store.
func (b *leaderboard) refresh() {
	b.runs, b.stats, b.err = nil, storage.Stats{}, nil
	if b.store != nil {
		if b.runs, b.err = b.store.TopRuns(maxRuns); b.err == nil {
			b.stats, b.err = b.store.Stats()
		}
	}

	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(r.Player, playerColumn),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.FinishedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

func (b *leaderboard) resize(width, height int) {
	b.width, b.height = width, height
	b.table = b.createTable()
	b.refresh()
}

// View renders the overlay, centered in the window.
func (b leaderboard) View() string {
	var sb strings.Builder

	sb.WriteString(boardTitleStyle.Render("HIGH SCORES"))
	sb.WriteString("\n")
	sb.WriteString(helpBarStyle.Render(fmt.Sprintf("%d runs by %d players, best %d, average %.1f",
		b.stats.Runs, b.stats.Players, b.stats.Best, b.stats.Average)))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		sb.WriteString(boardEmptyStyle.Render("Leaderboard unavailable:\n" + b.err.Error()))
	case len(b.runs) == 0:
		sb.WriteString(boardEmptyStyle.Render("No runs recorded yet.\nFinish a round to set a high score!"))
	default:
		sb.WriteString(boardFrameStyle.Render(b.table.View()))
	}

	return lipgloss.Place(max(b.width, minTableWidth), max(b.height-1, minBoardRows),
		lipgloss.Center, lipgloss.Center, sb.String())
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
