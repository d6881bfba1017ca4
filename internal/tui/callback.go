package tui

import (
	"github.com/MKhiriev/fieldsync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramCallback turns sync events into messages for a running Bubble Tea
// program. send is usually (*tea.Program).Send, which is safe for
// concurrent use, so the callback works with any dispatcher.
type ProgramCallback struct {
	send func(tea.Msg)
}

// NewProgramCallback creates a ProgramCallback that delivers messages with
// send.
func NewProgramCallback(send func(tea.Msg)) *ProgramCallback {
	return &ProgramCallback{send: send}
}

func (c *ProgramCallback) OnFetchComplete(success bool) {
	c.send(fetchCompleteMsg{success: success})
}

func (c *ProgramCallback) OnUploadProgress(status models.TotalRequestStatus) {
	c.send(uploadProgressMsg{status: status})
}

func (c *ProgramCallback) OnUploadPhaseComplete(status models.TotalRequestStatus) {
	c.send(uploadProgressMsg{status: status, final: true})
}

func (c *ProgramCallback) OnDownloadProgress(status models.TotalRequestStatus) {
	c.send(downloadProgressMsg{status: status})
}

func (c *ProgramCallback) OnDownloadPhaseComplete(status models.TotalRequestStatus) {
	c.send(downloadProgressMsg{status: status, final: true})
}

func (c *ProgramCallback) OnStreamProgress(processed, total int) {
	c.send(streamProgressMsg{processed: processed, total: total})
}

func (c *ProgramCallback) OnCycleFinish(errors map[int]string) {
	c.send(cycleFinishMsg{errors: errors})
}
