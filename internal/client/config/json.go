package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fakestore/storefront/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in whole seconds so config files stay editable by hand.
type JsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// given via -c or -config. When no path is given the function returns without
// touching cfg. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones and only set fields actually present in the file.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
}
