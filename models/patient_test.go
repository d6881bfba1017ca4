package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(v int64) *int64 { return &v }

func TestPatient_SyncState(t *testing.T) {
	tests := []struct {
		name        string
		patient     Patient
		wantNew     bool
		wantPending bool
	}{
		{name: "never synced", patient: Patient{LastEdited: ts(10)}, wantNew: true},
		{name: "synced, untouched", patient: Patient{LastEdited: ts(10), Base: ts(10)}},
		{name: "synced, edited", patient: Patient{LastEdited: ts(20), Base: ts(10)}, wantPending: true},
		{name: "synced without edit time", patient: Patient{Base: ts(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNew, tt.patient.IsNew())
			assert.Equal(t, tt.wantPending, tt.patient.HasPendingEdits())
		})
	}
}

func TestPatient_MarkSynced(t *testing.T) {
	p := Patient{LastEdited: ts(42)}
	p.MarkSynced()
	require.NotNil(t, p.Base)
	assert.Equal(t, int64(42), *p.Base)
	assert.False(t, p.IsNew())
	assert.False(t, p.HasPendingEdits())

	var bare Patient
	bare.MarkSynced()
	require.NotNil(t, bare.Base)
	assert.Zero(t, *bare.Base)
}

func TestReadingsBundle_Total(t *testing.T) {
	b := ReadingsBundle{
		Readings:  make([]Reading, 2),
		Referrals: make([]Referral, 1),
		Followups: make([]Assessment, 3),
	}
	assert.Equal(t, 6, b.Total())
	assert.Zero(t, ReadingsBundle{}.Total())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Contains(t, info.String(), "Build commit: abc123")
}
