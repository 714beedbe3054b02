// Package tui provides the Bubble Tea front end of the arcade: the game
// picker, the play screen, the scoreboard and the SSH server.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/session"
)

// SnapshotMsg carries a machine state change into the Bubble Tea loop.
type SnapshotMsg session.Snapshot

// GemsMsg reports the gems granted for the finished session.
type GemsMsg int

// FeedbackClearMsg hides the last answer feedback if it belongs to
// puzzle PuzzleID.
type FeedbackClearMsg struct{ PuzzleID uint64 }

// eventBus forwards machine callbacks, which run on timer and submission
// goroutines, to the Bubble Tea loop. Only the latest snapshot matters,
// so a pending one is replaced rather than queued.
type eventBus struct {
	snapshots chan session.Snapshot
	gems      chan int
	done      chan struct{}
	once      sync.Once
}

func newEventBus() *eventBus {
	return &eventBus{
		snapshots: make(chan session.Snapshot, 1),
		gems:      make(chan int, 1),
		done:      make(chan struct{}),
	}
}

func (b *eventBus) publish(s session.Snapshot) {
	for {
		select {
		case b.snapshots <- s:
			return
		default:
		}
		select {
		case <-b.snapshots:
		default:
		}
	}
}

func (b *eventBus) publishGems(g int) {
	select {
	case b.gems <- g:
	default:
	}
}

// stop releases a pending wait command.
func (b *eventBus) stop() {
	b.once.Do(func() { close(b.done) })
}

// wait returns a command that blocks until the next event.
func (b *eventBus) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.snapshots:
			return SnapshotMsg(s)
		case g := <-b.gems:
			return GemsMsg(g)
		case <-b.done:
			return nil
		}
	}
}
