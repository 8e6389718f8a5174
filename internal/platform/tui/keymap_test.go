package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", runeKey(' '), core.ActionPrimary},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrimary},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPrimary},
		{"w", runeKey('w'), core.ActionPrimary},
		{"pause", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"scores", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestPrimaryCommandFollowsState(t *testing.T) {
	sim := flappy.New(1)

	if from := primaryCommand(sim); from != flappy.StateStart || sim.State() != flappy.StatePlaying {
		t.Fatalf("from start: issued in %v, now %v; expected play", from, sim.State())
	}

	if from := primaryCommand(sim); from != flappy.StatePlaying || sim.Snapshot().Speed != sim.Config().Physics.JumpSpeed {
		t.Fatalf("while playing: issued in %v, speed %v; expected jump", from, sim.Snapshot().Speed)
	}
	if sim.State() != flappy.StatePlaying {
		t.Fatalf("jump changed state to %v", sim.State())
	}

	for sim.Tick() == flappy.StatePlaying {
	}

	if from := primaryCommand(sim); from != flappy.StateOver || sim.State() != flappy.StateStart {
		t.Fatalf("from over: issued in %v, now %v; expected reset", from, sim.State())
	}
}
