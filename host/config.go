package host

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config configures the reference host runtime. Values come from the
// environment.
type Config struct {
	// DBPath is the SQLite database holding the event journal.
	DBPath string `env:"LEDGER_DB" envDefault:"ledger.db"`

	// SnapshotPath is the JSON file holding the persisted ledger state.
	// Empty disables snapshot persistence (state lives in memory only).
	SnapshotPath string `env:"LEDGER_SNAPSHOT" envDefault:"ledger.snapshot.json"`

	// Stream is the journal stream name for this ledger instance.
	Stream string `env:"LEDGER_STREAM" envDefault:"ledger"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LEDGER_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the runtime configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
