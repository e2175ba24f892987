package config

import "time"

// Default configuration values.
const (
	DefaultOutput            = OutputAuto
	DefaultRule              = "expression"
	DefaultAddr              = "127.0.0.1:8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultPrompt            = "timelang> "
	DefaultHistoryFile       = ".timelang_history"
)

// Defaults returns the default values keyed by their config path, ready to
// be loaded as the lowest-precedence layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"output":                     DefaultOutput,
		"verbose":                    false,
		"workers":                    0,
		"rule":                       DefaultRule,
		"server.addr":                DefaultAddr,
		"server.read_header_timeout": DefaultReadHeaderTimeout.String(),
		"server.shutdown_timeout":    DefaultShutdownTimeout.String(),
		"repl.prompt":                DefaultPrompt,
		"repl.history_file":          DefaultHistoryFile,
	}
}

// ApplyDefaults fills zero-valued fields of c.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Rule == "" {
		c.Rule = DefaultRule
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = DefaultPrompt
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = DefaultHistoryFile
	}
}
