// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants shared by both views of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.DownloadMode != "" && !isDownloadMode(cfg.Adapter.DownloadMode) {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.MaxConcurrentRequests < 0 || cfg.Ingest.SinkCapacity < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SyncInterval < 0 || cfg.Workers.CycleTimeout < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.MaxConcurrentRequests <= 0 || !isDownloadMode(cfg.Adapter.DownloadMode) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.CycleTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Ingest.SinkCapacity <= 0 {
		return ErrInvalidIngestConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isDownloadMode(mode string) bool {
	return mode == "individual" || mode == "batched"
}
