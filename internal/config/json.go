package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pratikshau1/vaultnotes/internal/flagx"
	"github.com/pratikshau1/vaultnotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify durations either as
// strings like "15m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	Backend                 string         `json:"backend"`
	DatabaseDSN             string         `json:"database_dsn"`
	MaxFailedAttempts       int            `json:"max_failed_attempts"`
	LockoutDuration         timex.Duration `json:"lockout_duration"`
	SessionSecret           string         `json:"session_secret"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	FileStorage             string         `json:"file_storage"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	S3AccessKey             string         `json:"s3_access_key"`
	S3SecretKey             string         `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the existing Config values;
// zero values in the DTO leave defaults intact. Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override
// earlier ones. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MaxFailedAttempts != 0 {
		cfg.MaxFailedAttempts = jc.MaxFailedAttempts
	}
	if jc.LockoutDuration.Duration != 0 {
		cfg.LockoutDuration = time.Duration(jc.LockoutDuration.Duration)
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionValidityDuration.Duration != 0 {
		cfg.SessionValidityDuration = time.Duration(jc.SessionValidityDuration.Duration)
	}
	if jc.FileStorage != "" {
		cfg.FileStorage = jc.FileStorage
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
