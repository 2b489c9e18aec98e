package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/oahu-surf/internal/report"
)

// Loader runs one load cycle
type Loader interface {
	Load(ctx context.Context) (*report.Snapshot, error)
}

// loadTimeout bounds a whole cycle; each fetch has its own shorter timeout
const loadTimeout = 45 * time.Second

// Message types for async operations

// snapshotLoadedMsg is sent when a load cycle produced a report
type snapshotLoadedMsg struct {
	snapshot *report.Snapshot
}

// loadFailedMsg is sent when a load cycle produced no report
type loadFailedMsg struct {
	seq uint64
	err error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// loadSnapshot runs a load cycle in the background
func loadSnapshot(loader Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := loader.Load(ctx)
		if err != nil {
			var loadErr *report.LoadError
			if errors.As(err, &loadErr) {
				return loadFailedMsg{seq: loadErr.Seq, err: err}
			}
			return errMsg{err: err}
		}
		return snapshotLoadedMsg{snapshot: snap}
	}
}
