package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dataDirName = ".wellness-tracker"
	dbFileName  = "wellness_tracker.db"
	logFileName = "wellness.log"

	DefaultPasswordHashAlgorithm = "sha256"
	DefaultCompletionWindowDays  = 30
	DefaultBusyTimeout           = 5 * time.Second
	DefaultMaxRetries            = 3
	DefaultLogLevel              = "info"
)

// DataDir returns the per-user directory holding the database and logs.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, dataDirName), nil
}

func defaultConfig() (*StructuredConfig, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: DefaultPasswordHashAlgorithm,
			CompletionWindowDays:  DefaultCompletionWindowDays,
		},
		Storage: Storage{
			DB: DB{
				Path:        filepath.Join(dir, dbFileName),
				BusyTimeout: DefaultBusyTimeout,
				MaxRetries:  DefaultMaxRetries,
			},
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  filepath.Join(dir, "logs", logFileName),
		},
	}, nil
}
