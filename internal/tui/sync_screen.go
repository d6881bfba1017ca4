package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fieldsync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type fetchState int

const (
	fetchPending fetchState = iota
	fetchOK
	fetchFailed
)

const barWidth = 40

// syncModel shows one sync cycle. It quits once the cycle has returned, so
// the last frame stays on the terminal as the summary.
type syncModel struct {
	info    models.AppBuildInfo
	spinner spinner.Model
	bar     progress.Model
	cancel  context.CancelFunc

	fetch        fetchState
	upload       models.TotalRequestStatus
	uploadDone   bool
	download     models.TotalRequestStatus
	downloadDone bool

	streamProcessed int
	streamTotal     int

	errors   map[int]string
	finished bool
	outcome  *models.CycleOutcome

	cancelling bool
	quitByUser bool
}

func newSyncModel(info models.AppBuildInfo, cancel context.CancelFunc) syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return syncModel{
		info:    info,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		cancel:  cancel,
	}
}

func (m syncModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, keys.quit) {
			return m, nil
		}
		// a second press leaves without waiting for the cycle
		if m.cancelling {
			m.quitByUser = true
			return m, tea.Quit
		}
		m.cancelling = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, nil
	case fetchCompleteMsg:
		if msg.success {
			m.fetch = fetchOK
		} else {
			m.fetch = fetchFailed
		}
		return m, nil
	case uploadProgressMsg:
		m.upload = latest(m.upload, msg.status)
		m.uploadDone = m.uploadDone || msg.final
		return m, nil
	case downloadProgressMsg:
		m.download = latest(m.download, msg.status)
		m.downloadDone = m.downloadDone || msg.final
		return m, nil
	case streamProgressMsg:
		if msg.processed >= m.streamProcessed {
			m.streamProcessed = msg.processed
			m.streamTotal = msg.total
		}
		return m, nil
	case cycleFinishMsg:
		m.finished = true
		m.errors = msg.errors
		return m, nil
	case cycleDoneMsg:
		outcome := msg.outcome
		m.outcome = &outcome
		m.finished = true
		if m.errors == nil {
			m.errors = outcome.Errors
		}
		return m, tea.Quit
	case spinner.TickMsg:
		if m.outcome != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// latest keeps the status with more settled requests. Inline callbacks of
// concurrent requests may be delivered out of order.
func latest(cur, next models.TotalRequestStatus) models.TotalRequestStatus {
	if next.Completed+next.Failed >= cur.Completed+cur.Failed {
		return next
	}
	return cur
}

func (m syncModel) View() string {
	var b strings.Builder

	b.WriteString(m.fetchLine())
	b.WriteString("\n\n")

	if m.fetch == fetchOK {
		b.WriteString(m.phaseView("Upload  ", m.upload, m.uploadDone))
		b.WriteString("\n")
		b.WriteString(m.phaseView("Download", m.download, m.downloadDone))
		if m.streamTotal > 0 {
			fmt.Fprintf(&b, "\n          %s of %s streamed records",
				humanize.Comma(int64(m.streamProcessed)), humanize.Comma(int64(m.streamTotal)))
		}
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString("\n")
		b.WriteString(m.summaryView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderBuildInfo(m.info))

	hotKeys := "q: cancel sync"
	switch {
	case m.outcome != nil:
		hotKeys = ""
	case m.cancelling:
		hotKeys = "cancelling... q: quit now"
	}

	return renderPage("SYNC", b.String(), hotKeys)
}

func (m syncModel) fetchLine() string {
	switch m.fetch {
	case fetchOK:
		return okStyle.Render("✓") + " Server changes fetched"
	case fetchFailed:
		return errorStyle.Render("✗") + " Could not fetch server changes"
	default:
		return m.spinner.View() + " Fetching server changes..."
	}
}

func (m syncModel) phaseView(label string, s models.TotalRequestStatus, done bool) string {
	mark := m.spinner.View()
	if done {
		mark = okStyle.Render("✓")
		if s.Failed > 0 {
			mark = errorStyle.Render("!")
		}
	}
	return fmt.Sprintf("%s %s %s %s", mark, label, m.bar.ViewAs(fraction(s)), statusLine(s))
}

func (m syncModel) summaryView() string {
	var b strings.Builder

	success := m.outcome != nil && m.outcome.Success
	if success {
		b.WriteString(okStyle.Render("Sync complete"))
	} else {
		b.WriteString(errorStyle.Render("Sync incomplete"))
	}

	if m.outcome != nil && !m.outcome.FinishedAt.IsZero() && !m.outcome.StartedAt.IsZero() {
		fmt.Fprintf(&b, " in %s", m.outcome.FinishedAt.Sub(m.outcome.StartedAt).Round(time.Millisecond))
	}

	if report := renderErrors(m.errors); report != "" {
		b.WriteString("\n\n")
		b.WriteString(report)
	}

	return summaryStyle.Render(b.String())
}
