package service

import (
	"github.com/MKhiriev/fieldsync/internal/adapter"
	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/store"
)

// ClientServices groups the device-side services.
type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
	DataService ClientDataService
}

// NewClientServices wires the client services. cb receives the progress of
// every cycle the job runs; dispatcher decides where the callbacks run and
// may be nil.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg config.ClientConfig,
	cb SyncCallback,
	dispatcher Dispatcher,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(storages.Entities, storages.Checkpoints, serverAdapter, SyncOptions{
		MaxConcurrentRequests: cfg.Adapter.MaxConcurrentRequests,
		DownloadMode:          DownloadMode(cfg.Adapter.DownloadMode),
		SinkCapacity:          cfg.Ingest.SinkCapacity,
		Dispatcher:            dispatcher,
	}, logger)

	job := NewClientSyncJob(syncSvc, SyncJobOptions{
		Interval:     cfg.Workers.SyncInterval,
		CycleTimeout: cfg.Workers.CycleTimeout,
		Callback:     cb,
	}, logger)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     job,
		DataService: NewClientDataService(storages.DataEntry, logger),
	}
}
