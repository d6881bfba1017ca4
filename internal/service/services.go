package service

import (
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/store"
)

// Services groups the sync server's services.
type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	records := NewRecordValidationService().Wrap(NewRecordService(storages.Records, nil, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		RecordService:  records,
		SyncService:    NewSyncService(storages.Records, logger),
		AppInfoService: appInfo,
	}, nil
}
