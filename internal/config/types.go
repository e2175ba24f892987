// Package config holds the settings shared by the timelang CLI, REPL and
// HTTP server, together with config file discovery.
package config

import (
	"fmt"
	"slices"
	"time"
)

// Output modes understood by the CLI renderer.
const (
	OutputAuto     = "auto"
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
)

// OutputModes lists every valid value of Config.Output.
var OutputModes = []string{OutputAuto, OutputText, OutputMarkdown, OutputJSON, OutputYAML}

// Config is the fully merged timelang configuration.
type Config struct {
	Output  string       `koanf:"output"`
	Verbose bool         `koanf:"verbose"`
	Workers int          `koanf:"workers"`
	Rule    string       `koanf:"rule"`
	Server  ServerConfig `koanf:"server"`
	REPL    REPLConfig   `koanf:"repl"`
}

// ServerConfig configures `timelang serve`.
type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// REPLConfig configures the interactive shell.
type REPLConfig struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("invalid output mode %q (valid: %v)", c.Output, OutputModes)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("server.read_header_timeout must not be negative")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	return nil
}
