package service

import (
	"testing"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/mock"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_Dispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{
		Entities:    mock.NewMockEntityStore(ctrl),
		Checkpoints: mock.NewMockCheckpointStore(ctrl),
		DataEntry:   mock.NewMockDataEntryStore(ctrl),
	}
	server := mock.NewMockServerAdapter(ctrl)

	t.Run("serial dispatcher reaches the engine", func(t *testing.T) {
		d := NewSerialDispatcher(0)
		defer d.Close()

		services := NewClientServices(storages, server, config.ClientConfig{}, LogCallback{Logger: logger.Nop()}, d, logger.Nop())

		svc, ok := services.SyncService.(*clientSyncService)
		require.True(t, ok)
		assert.Same(t, d, svc.opts.Dispatcher)
		assert.NotNil(t, services.SyncJob)
		assert.NotNil(t, services.DataService)
	})

	t.Run("nil dispatcher runs inline", func(t *testing.T) {
		services := NewClientServices(storages, server, config.ClientConfig{}, nil, nil, logger.Nop())

		svc, ok := services.SyncService.(*clientSyncService)
		require.True(t, ok)
		assert.Equal(t, InlineDispatcher{}, svc.opts.Dispatcher)
	})
}
