package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value, so a partial file only
// overrides what it names.
type JsonConfig struct {
	StoragePath  *string `json:"storage_path"`
	StorageKey   *string `json:"storage_key"`
	StorageQuota *int64  `json:"storage_quota"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c or -config (flagx.ConfigFile). With neither
// flag nothing is loaded. Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.StorageKey != nil {
		cfg.StorageKey = *jc.StorageKey
	}
	if jc.StorageQuota != nil {
		cfg.StorageQuota = *jc.StorageQuota
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
