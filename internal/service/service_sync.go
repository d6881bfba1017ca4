package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/models"
)

// syncService serves the manifest and the batched download straight from
// the record repository.
type syncService struct {
	records store.RecordRepository

	logger *logger.Logger
}

func NewSyncService(records store.RecordRepository, logger *logger.Logger) SyncService {
	return &syncService{records: records, logger: logger}
}

// Updates implements SyncService. A zero since lists every record.
func (s *syncService) Updates(ctx context.Context, since int64) (models.SyncManifest, error) {
	if since < 0 {
		return models.SyncManifest{}, ErrInvalidSince
	}

	manifest, err := s.records.ChangedSince(ctx, since)
	if err != nil {
		return models.SyncManifest{}, fmt.Errorf("failed to compute sync manifest: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*syncService.Updates").
		Int64("since", since).
		Int("total", manifest.Total()).
		Msg("sync manifest computed")

	return manifest, nil
}

func (s *syncService) ReadingsSince(ctx context.Context, since int64) (models.ReadingsBundle, error) {
	if since < 0 {
		return models.ReadingsBundle{}, ErrInvalidSince
	}

	bundle, err := s.records.ReadingsSince(ctx, since)
	if err != nil {
		return models.ReadingsBundle{}, fmt.Errorf("failed to load readings since %d: %w", since, err)
	}

	return bundle, nil
}
