package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Interval fields use timex.Duration, which accepts
// both string values such as "1h" and integer nanoseconds. After
// unmarshalling, fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr string         `json:"endpoint_addr"`
	DatabaseDSN  string         `json:"database_dsn"`
	TokenTTL     timex.Duration `json:"token_ttl"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config command-line flags, when present. A missing flag means no JSON
// file is loaded; an unreadable or invalid file panics, since the process
// cannot run with a half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.TokenTTL = time.Duration(c.TokenTTL.Duration)
}
