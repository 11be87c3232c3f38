package cli

// Config holds all CLI settings so commands never touch package globals
type Config struct {
	LogLevel  string
	LogFormat string
	Version   string
}

// NewConfig creates a new CLI configuration with defaults
func NewConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "message",
		Version:   "dev",
	}
}
