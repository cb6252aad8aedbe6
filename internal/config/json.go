package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/janovian/stillpoint/internal/flagx"
	"github.com/janovian/stillpoint/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath              string         `json:"database_path"`
	SimulatedLatency          timex.Duration `json:"simulated_latency"`
	VerificationSecret        string         `json:"verification_secret"`
	VerificationTokenValidity timex.Duration `json:"verification_token_validity"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flag; when no flag is given, nothing is
// loaded. Read or unmarshal errors panic (caller may recover).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SimulatedLatency.Duration != 0 {
		cfg.SimulatedLatency = time.Duration(jc.SimulatedLatency.Duration)
	}
	if jc.VerificationSecret != "" {
		cfg.VerificationSecret = jc.VerificationSecret
	}
	if jc.VerificationTokenValidity.Duration != 0 {
		cfg.VerificationTokenValidity = time.Duration(jc.VerificationTokenValidity.Duration)
	}
}
