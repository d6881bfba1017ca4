package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fieldsync/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// fraction is the settled share of a phase, 1 for an empty one.
func fraction(s models.TotalRequestStatus) float64 {
	if s.Total <= 0 {
		return 1
	}
	return float64(s.Completed+s.Failed) / float64(s.Total)
}

func statusLine(s models.TotalRequestStatus) string {
	line := fmt.Sprintf("%d/%d", s.Completed, s.Total)
	if s.Failed > 0 {
		line += errorStyle.Render(fmt.Sprintf(" (%d failed)", s.Failed))
	}
	return line
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
