package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-ledger/host"
)

// openRuntime loads the environment config and opens the durable runtime.
// The caller must Close it.
func openRuntime() (*host.Runtime, error) {
	cfg, err := host.LoadConfig()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return host.NewRuntime(cfg, logger)
}

func parseAmount(arg string) (uint64, error) {
	amount, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", arg, err)
	}
	return amount, nil
}
