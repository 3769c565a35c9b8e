package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
	"github.com/dmitrijs2005/userdir/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	APIKey         *string         `json:"api_key"`
	PerPage        *int            `json:"per_page"`
	PageSize       *int            `json:"page_size"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Debug          *bool           `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the defaults; absent keys keep
// their current values. Panics on read or unmarshal errors (caller should
// recover if desired).
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

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.APIKey != nil {
		cfg.APIKey = *jc.APIKey
	}
	if jc.PerPage != nil {
		cfg.PerPage = *jc.PerPage
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
