package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/reviewdeck/adminctl/internal/flagx"
	"github.com/reviewdeck/adminctl/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the request timeout either as a string
// like "10s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	AuthServiceURL       string         `json:"auth_service_url"`
	UserServiceURL       string         `json:"user_service_url"`
	MasterDataServiceURL string         `json:"master_data_service_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	DefaultPageSize      int            `json:"default_page_size"`
	LogLevel             string         `json:"log_level"`
	SessionFile          string         `json:"session_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags.
// When no path is given, nothing is loaded. Only fields actually present in
// the file override the current values; zero values are skipped so earlier
// layers survive a sparse file.
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

	if jc.AuthServiceURL != "" {
		cfg.AuthServiceURL = jc.AuthServiceURL
	}
	if jc.UserServiceURL != "" {
		cfg.UserServiceURL = jc.UserServiceURL
	}
	if jc.MasterDataServiceURL != "" {
		cfg.MasterDataServiceURL = jc.MasterDataServiceURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DefaultPageSize > 0 {
		cfg.DefaultPageSize = jc.DefaultPageSize
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
}
