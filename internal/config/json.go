package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashAlgorithm string `json:"password_hash_algorithm"`
		CompletionWindowDays  int    `json:"completion_window_days"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path        string   `json:"path"`
			BusyTimeout Duration `json:"busy_timeout"`
			MaxRetries  uint64   `json:"max_retries"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
		Debug bool   `json:"debug"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: jsonCfg.App.PasswordHashAlgorithm,
			CompletionWindowDays:  jsonCfg.App.CompletionWindowDays,
		},
		Storage: Storage{
			DB: DB{
				Path:        jsonCfg.Storage.DB.Path,
				BusyTimeout: time.Duration(jsonCfg.Storage.DB.BusyTimeout),
				MaxRetries:  jsonCfg.Storage.DB.MaxRetries,
			},
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
			Debug: jsonCfg.Log.Debug,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
