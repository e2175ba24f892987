package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	assert.Equal(t, OutputAuto, cfg.Output)
	assert.Equal(t, DefaultRule, cfg.Rule)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultPrompt, cfg.REPL.Prompt)
	assert.Equal(t, DefaultHistoryFile, cfg.REPL.HistoryFile)

	ApplyDefaults(nil)
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	cfg := Config{Output: OutputJSON, Server: ServerConfig{Addr: ":9000"}}
	ApplyDefaults(&cfg)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: "invalid output mode"},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: "workers"},
		{name: "negative header timeout", mutate: func(c *Config) { c.Server.ReadHeaderTimeout = -time.Second }, wantErr: "read_header_timeout"},
		{name: "negative shutdown timeout", mutate: func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, wantErr: "shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			ApplyDefaults(&cfg)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timelang.yaml")
	content := `
output: json
workers: 4
server:
  addr: ":9090"
  read_header_timeout: 3s
repl:
  prompt: "> "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.Equal(t, DefaultHistoryFile, cfg.REPL.HistoryFile)
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timelang.toml")
	content := `
output = "yaml"
verbose = true

[server]
addr = "0.0.0.0:80"
shutdown_timeout = "1s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, OutputYAML, cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "0.0.0.0:80", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timelang.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = "), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestTOMLParser_RoundTrip(t *testing.T) {
	p := TOMLParser()
	out, err := p.Marshal(map[string]interface{}{"output": "text", "server": map[string]interface{}{"addr": ":1"}})
	require.NoError(t, err)

	back, err := p.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, "text", back["output"])
	assert.Equal(t, map[string]interface{}{"addr": ":1"}, back["server"])
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindConfigFile(dir))

	tomlPath := filepath.Join(dir, "timelang.toml")
	require.NoError(t, os.WriteFile(tomlPath, nil, 0600))
	assert.Equal(t, tomlPath, FindConfigFile(dir))

	yamlPath := filepath.Join(dir, "timelang.yaml")
	require.NoError(t, os.WriteFile(yamlPath, nil, 0600))
	assert.Equal(t, yamlPath, FindConfigFile(dir), "yaml wins over toml")
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "timelang.yml"), nil, 0600))

	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Empty(t, FindProjectRoot(t.TempDir()))
}
