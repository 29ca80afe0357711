package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

type fileSchema struct {
	API     apiSchema     `toml:"api"`
	Sync    syncSchema    `toml:"sync"`
	Display displaySchema `toml:"display"`
}

type apiSchema struct {
	BaseURL        string `toml:"base_url"`
	RequestTimeout string `toml:"request_timeout"`
}

type syncSchema struct {
	ClockAgentID    int    `toml:"clock_agent_id"`
	RoundInterval   string `toml:"round_interval"`
	DiagnosticEvery int    `toml:"diagnostic_every"`
	SkipReset       bool   `toml:"skip_reset"`
}

type displaySchema struct {
	ContainerCapacity int `toml:"container_capacity"`
	TruckCapacity     int `toml:"truck_capacity"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		API: apiSchema{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout.String(),
		},
		Sync: syncSchema{
			ClockAgentID:    cfg.Sync.ClockAgentID,
			RoundInterval:   cfg.Sync.RoundInterval.String(),
			DiagnosticEvery: cfg.Sync.DiagnosticEvery,
			SkipReset:       cfg.Sync.SkipReset,
		},
		Display: displaySchema{
			ContainerCapacity: cfg.Display.ContainerCapacity,
			TruckCapacity:     cfg.Display.TruckCapacity,
		},
	}
}

// Encode renders cfg in the same TOML layout Write persists.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}
	return data, nil
}

// Write replaces the file at path atomically.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
