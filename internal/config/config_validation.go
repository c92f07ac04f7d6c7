// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The password digest name is checked by the credential service itself,
// which owns the list of supported algorithms.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CompletionWindowDays < 0 {
		return fmt.Errorf("%w: completion window must not be negative, got %d", ErrInvalidAppConfigs, cfg.App.CompletionWindowDays)
	}

	if strings.Contains(cfg.Storage.DB.Path, "?") {
		return fmt.Errorf("%w: db path must be a plain file path", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.BusyTimeout < 0 {
		return fmt.Errorf("%w: busy timeout must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
