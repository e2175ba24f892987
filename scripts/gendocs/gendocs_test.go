package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/timelang/internal/cli"
	"github.com/leapstack-labs/timelang/internal/config"
)

func TestGrammarPage(t *testing.T) {
	page, err := grammarPage()
	require.NoError(t, err)
	out := string(page)

	assert.Contains(t, out, "# Grammar")
	assert.Contains(t, out, "| `relative` | `2 days before next Friday` | `2 days before next Friday` |")
	assert.Contains(t, out, "`tomorrow`")
	assert.Contains(t, out, "DO NOT EDIT")
}

func TestConfigPage(t *testing.T) {
	page, err := configPage()
	require.NoError(t, err)
	out := string(page)

	assert.Contains(t, out, "`TIMELANG_SERVER__ADDR`")
	assert.Contains(t, out, "`127.0.0.1:8080`")
	assert.Contains(t, out, "`timelang.toml`")
	assert.Contains(t, out, "```toml\n")
	assert.Contains(t, out, "[server]")
	assert.Contains(t, out, "```yaml\n")
	assert.Contains(t, out, "server:\n")
}

func TestDefaultsFile_LoadsBack(t *testing.T) {
	for _, name := range []string{"timelang.yaml", "timelang.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			body, err := defaultsFile(config.ParserFor(path))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, body, 0o600))

			cfg, err := config.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
			assert.Equal(t, config.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
			assert.Equal(t, config.DefaultPrompt, cfg.REPL.Prompt)
			assert.Equal(t, config.DefaultRule, cfg.Rule)
		})
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "TIMELANG_WORKERS", envName("workers"))
	assert.Equal(t, "TIMELANG_REPL__HISTORY_FILE", envName("repl.history_file"))
}

func TestRun(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, run("all", "", root))
	for _, name := range []string{"cli/index.md", "cli/parse.md", "cli/lsp.md", "reference/grammar.md", "reference/configuration.md"} {
		_, err := os.Stat(filepath.Join(root, "docs", name))
		assert.NoError(t, err, name)
	}

	out := filepath.Join(root, "custom")
	require.NoError(t, run("grammar", out, root))
	_, err := os.Stat(filepath.Join(out, "grammar.md"))
	assert.NoError(t, err)

	assert.Error(t, run("lint", "", root))
	assert.Error(t, run("all", out, root))
}

func TestCommandPage(t *testing.T) {
	root := cli.NewRootCmd()
	parse, _, err := root.Find([]string{"parse"})
	require.NoError(t, err)
	out := string(commandPage(parse))

	assert.Contains(t, out, "# parse\n")
	assert.Contains(t, out, "```bash\ntimelang parse [expression...] [flags]\n```")
	assert.Contains(t, out, "`--as`")
	assert.Contains(t, out, "## Examples")
	assert.NotContains(t, out, "Global Options")

	index := string(cliIndex(root))
	assert.Contains(t, index, "[`parse`](/cli/parse)")
	assert.Contains(t, index, "`-o`, `--output`")
	assert.NotContains(t, index, "[`help`]")
}

func TestCleanExample(t *testing.T) {
	in := "  timelang parse 3 days ago\n    timelang parse --as hour 5pm\n"
	assert.Equal(t, "timelang parse 3 days ago\n  timelang parse --as hour 5pm", cleanExample(in))
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Title")
	w.BulletList([]string{"a", "b"})
	w.CodeBlock("bash", "echo hi\n")
	assert.Equal(t, "## Title\n\n- a\n- b\n\n```bash\necho hi\n```\n\n", w.String())
	assert.Equal(t, "a b", cleanDescription("a\n  b"))
}
