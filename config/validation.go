package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Development and test run with defaults; production
// refuses to start without real credentials.
func ValidateConfig(cfg *Config) error {
	var missing []string

	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			missing = append(missing, "JWT_SECRET")
		}
		if cfg.DBPassword == "" || cfg.DBPassword == "postgres" {
			missing = append(missing, "DB_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
