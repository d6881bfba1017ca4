package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable the config reads, e.g.
// FIELDSYNC_SERVER_ADDRESS.
const envPrefix = "FIELDSYNC_"

// parseEnv populates cfg from environment variables. Nested groups add
// their own envPrefix tag, so the DSN comes from
// FIELDSYNC_STORAGE_DB_DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
