package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	out := RenderStatus(
		models.NewAppBuildInfo("2.1.0", "2026-01-02", "abc123"),
		models.PendingCounts{NewPatients: 1200, NewReadings: 3, EditedPatients: 0},
		now.Add(-3*time.Hour).Unix(),
		now,
	)

	assert.Contains(t, out, "PENDING UPLOADS")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "2.1.0")
	assert.Contains(t, out, "abc123")
}

func TestRenderStatus_NeverSynced(t *testing.T) {
	out := RenderStatus(models.AppBuildInfo{}, models.PendingCounts{}, 0, time.Now())

	assert.Contains(t, out, "never")
	assert.Contains(t, out, "N/A")
}

func TestRenderErrors(t *testing.T) {
	assert.Empty(t, renderErrors(nil))

	out := renderErrors(map[int]string{
		409:             "record already exists",
		app.CodeNetwork: "network",
	})
	assert.Less(t, strings.Index(out, "network"), strings.Index(out, "record already exists"))
	assert.NotContains(t, out, "server is unreachable")

	out = renderErrors(map[int]string{app.CodeCancelled: "cancelled", app.CodeNetwork: "network"})
	assert.Contains(t, out, "server is unreachable")
}
