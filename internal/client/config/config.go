package config

import "time"

// Config holds runtime settings for the ScanMark client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout for API calls that must not hang
//     the prompt (auth, health).
//   - ProgressTickInterval: how often the simulated upload progress advances.
//   - StorePath: path of the local SQLite file holding session state.
type Config struct {
	APIBaseURL           string
	RequestTimeout       time.Duration
	ProgressTickInterval time.Duration
	StorePath            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.RequestTimeout = 12 * time.Second
	c.ProgressTickInterval = 500 * time.Millisecond
	c.StorePath = "scanmark.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
