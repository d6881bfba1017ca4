package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetVersionInfo
// ─────────────────────────────────────────────

func TestGetVersionInfo_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetVersionInfo(context.Background()).Version)
}

func TestGetVersionInfo_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.ServerApp{Version: "v1.2.3-beta+build.42"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetVersionInfo(context.Background()).Version)
	assert.Equal(t, "v1.2.3-beta+build.42", svc2.GetVersionInfo(context.Background()).Version)
}

func TestGetVersionInfo_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetVersionInfo(ctx).Version)
}

func TestGetVersionInfo_StartedAtIsStable(t *testing.T) {
	before := time.Now().Unix()
	svc, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	first := svc.GetVersionInfo(context.Background())
	assert.GreaterOrEqual(t, first.StartedAt, before)
	assert.Equal(t, first, svc.GetVersionInfo(context.Background()))
}
