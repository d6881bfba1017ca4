package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
)

type appInfoService struct {
	version   string
	startedAt time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:   cfg.Version,
		startedAt: time.Now(),
		logger:    logger,
	}, nil
}

// GetVersionInfo reports the configured version and when this process
// started, so a client can tell a restarted server apart.
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		Version:   s.version,
		StartedAt: s.startedAt.Unix(),
	}
}
