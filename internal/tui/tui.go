package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// SyncFunc runs one sync cycle reporting to cb.
type SyncFunc func(ctx context.Context, cb service.SyncCallback) models.CycleOutcome

// TUI draws sync progress in the terminal.
type TUI struct {
	info   models.AppBuildInfo
	opts   []tea.ProgramOption
	logger *logger.Logger
}

// New creates a TUI. opts are passed to every Bubble Tea program it starts.
func New(info models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{info: info, opts: opts, logger: logger}
}

// RunSync runs one cycle through run while showing its progress. Quitting
// cancels the cycle; RunSync still waits for it to return and then reports
// ErrUserQuit together with the outcome.
func (t *TUI) RunSync(ctx context.Context, run SyncFunc) (models.CycleOutcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSyncModel(t.info, cancel), t.opts...)
	cb := NewProgramCallback(p.Send)

	var outcome models.CycleOutcome
	done := make(chan struct{})
	go func() {
		defer close(done)
		outcome = run(ctx, cb)
		p.Send(cycleDoneMsg{outcome: outcome})
	}()

	final, runErr := p.Run()
	cancel()
	<-done

	if runErr != nil {
		t.logger.Err(runErr).Str("func", "TUI.RunSync").Msg("terminal ui failed")
		return outcome, fmt.Errorf("run sync ui: %w", runErr)
	}

	if m, ok := final.(syncModel); ok && (m.quitByUser || m.cancelling) {
		return outcome, ErrUserQuit
	}
	return outcome, nil
}
