package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/fieldsync/models"
	"github.com/dustin/go-humanize"
)

// RenderStatus is the page printed by the status command: what waits for
// upload and when the device last completed a sync.
func RenderStatus(info models.AppBuildInfo, pending models.PendingCounts, lastSync int64, now time.Time) string {
	var b strings.Builder

	b.WriteString("New patients:     ")
	b.WriteString(humanize.Comma(int64(pending.NewPatients)))
	b.WriteString("\nNew readings:     ")
	b.WriteString(humanize.Comma(int64(pending.NewReadings)))
	b.WriteString("\nEdited patients:  ")
	b.WriteString(humanize.Comma(int64(pending.EditedPatients)))
	b.WriteString("\n\nLast sync:        ")
	b.WriteString(lastSyncText(lastSync, now))
	b.WriteString("\n\n")
	b.WriteString(renderBuildInfo(info))

	return renderPage("PENDING UPLOADS", b.String(), "")
}

func lastSyncText(lastSync int64, now time.Time) string {
	if lastSync <= 0 {
		return "never"
	}
	return humanize.RelTime(time.Unix(lastSync, 0), now, "ago", "from now")
}
