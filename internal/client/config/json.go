package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/articlegate/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. After unmarshalling, its fields are copied into the runtime
// Config struct.
type JsonConfig struct {
	ServerAddr string `json:"server_addr"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a broken configuration file
// is a fatal startup condition.
func parseJson(config *Config) {

	// try flags
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

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerAddr = c.ServerAddr
}
