package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	cliconfig "github.com/leapstack-labs/timelang/internal/cli/config"
	"github.com/leapstack-labs/timelang/internal/config"
)

// configDescriptions documents each key in config.Defaults.
var configDescriptions = map[string]string{
	"output":                     "Output format: auto, text, markdown, json or yaml",
	"verbose":                    "Enable debug logging on stderr",
	"workers":                    "Concurrent parsers for batch commands, 0 means one per CPU",
	"rule":                       "Grammar rule inputs are parsed as",
	"server.addr":                "Listen address for serve",
	"server.read_header_timeout": "Timeout for reading request headers",
	"server.shutdown_timeout":    "Grace period for in-flight requests on shutdown",
	"repl.prompt":                "Prompt shown by repl",
	"repl.history_file":          "File repl keeps its history in",
}

// envName returns the environment variable that sets key.
func envName(key string) string {
	return cliconfig.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// generateConfigDocs writes configuration.md from the config defaults.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	page, err := configPage()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), page, 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}

func configPage() ([]byte, error) {
	defaults := config.Defaults()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "timelang configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("timelang looks for %s in the current directory and its parents. Settings are layered: defaults, then the config file, then environment variables, then flags.",
		strings.Join(mapInline(config.ConfigFileNames), ", ")))

	var rows [][]string
	for _, key := range keys {
		desc, ok := configDescriptions[key]
		if !ok {
			return nil, fmt.Errorf("config key %s has no description", key)
		}
		def := fmt.Sprint(defaults[key])
		if def != "" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode(key), InlineCode(envName(key)), def, desc})
	}
	w.Table([]string{"Key", "Environment", "Default", "Description"}, rows)

	w.Header(2, "Defaults as a file")
	w.Paragraph("Every default written out in each supported format.")
	for _, ex := range []struct {
		lang   string
		parser koanf.Parser
	}{
		{"yaml", yaml.Parser()},
		{"toml", config.TOMLParser()},
	} {
		body, err := defaultsFile(ex.parser)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s defaults: %w", ex.lang, err)
		}
		w.CodeBlock(ex.lang, strings.TrimSpace(string(body)))
	}

	return w.Bytes(), nil
}

// defaultsFile renders config.Defaults as a config file using p.
func defaultsFile(p koanf.Parser) ([]byte, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(config.Defaults(), "."), nil); err != nil {
		return nil, err
	}
	return k.Marshal(p)
}

func mapInline(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = InlineCode(n)
	}
	return out
}
