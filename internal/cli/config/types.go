// Package config provides layered configuration for the slownie CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Workers      int          `koanf:"workers"`
	GroupDigits  bool         `koanf:"group_digits"`
	Server       ServerConfig `koanf:"server"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWorkers     = 4
	DefaultGroupDigits = true
	DefaultServerAddr  = ":8080"
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Workers:      DefaultWorkers,
		GroupDigits:  DefaultGroupDigits,
		Server:       ServerConfig{Addr: DefaultServerAddr},
	}
}
