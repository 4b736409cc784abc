package config

import "fmt"

// Warnings reports non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	// Check for potentially insecure default values
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if !c.DropLogEnabled() {
		warnings = append(warnings, "DATABASE_URL is not set - drop log is disabled")
	}

	if c.Environment == EnvironmentProduction && c.LogFormat != "json" {
		warnings = append(warnings, fmt.Sprintf("LOG_FORMAT=%s in production - json is recommended for log shipping", c.LogFormat))
	}

	if c.DropLogWorkers < 1 {
		warnings = append(warnings, fmt.Sprintf("DROPLOG_WORKERS=%d - falling back to a single worker", c.DropLogWorkers))
	}

	if c.GameDataReload < 0 || (c.GameDataReload > 0 && c.GameDataReload < MinGameDataReload) {
		warnings = append(warnings, fmt.Sprintf("GAMEDATA_RELOAD_INTERVAL=%s - polling disabled, use 0 or at least %s", c.GameDataReload, MinGameDataReload))
	}

	return warnings
}

// GameDataReloadEnabled reports whether periodic game data reloads should run
func (c *Config) GameDataReloadEnabled() bool {
	return c.GameDataReload >= MinGameDataReload
}
