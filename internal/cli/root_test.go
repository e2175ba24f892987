package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/timelang/internal/cli/commands"
	"github.com/leapstack-labs/timelang/internal/cli/config"
	"github.com/leapstack-labs/timelang/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Subcommands(t *testing.T) {
	root := NewRootCmd()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"parse", "ast", "tokens", "fmt", "check", "rules", "repl", "serve", "lsp", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	for _, flag := range []string{"config", "verbose", "output", "workers"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_ParseJSON(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "", "-o", "json", "parse", "from", "20/4/2021", "to", "next", "week")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "range", got["kind"])
	assert.Equal(t, "TimeRange", got["node"])
	assert.Equal(t, "from 20/4/2021 to next week", got["canonical"])
	assert.Equal(t, "expression", got["rule"])
	assert.NotNil(t, got["ast"])
	assert.Nil(t, got["error"])
}

func TestRoot_ParseJSONError(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "", "--output", "json", "parse", "5 eons ago")
	require.ErrorIs(t, err, commands.ErrInvalid)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	e := got["error"].(map[string]any)
	assert.Equal(t, float64(3), e["column"])
	assert.Equal(t, "token mismatch", e["kind"])
}

func TestRoot_ASTYAML(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "", "-o", "yaml", "ast", "--as", "hour", "7 pm")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Hour12", got["node"])
	assert.Equal(t, "7 PM", got["text"])
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "timelang.yaml", "output: json\nrule: duration\n")

	out, _, err := run(t, "", "parse", "2 hours and 1 minute")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "duration", got["kind"])
	assert.Equal(t, "duration", got["rule"])
}

func TestRoot_ExplicitConfigAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	cfgPath := testutil.WriteFile(t, t.TempDir(), "custom.toml", "output = \"text\"\n")
	t.Setenv("TIMELANG_OUTPUT", "yaml")

	out, _, err := run(t, "", "--config", cfgPath, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "- name: absolute\n")
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TIMELANG_OUTPUT", "html")

	_, _, err := run(t, "", "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}

func TestRoot_CheckJSON(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "tomorrow\n\nbogus\n", "-o", "json", "-j", "2", "check")
	require.ErrorIs(t, err, commands.ErrInvalid)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "<stdin>", got[0]["file"])
	assert.Equal(t, map[string]any{"total": float64(2), "valid": float64(1), "invalid": float64(1)}, got[0]["summary"])

	results := got[0]["results"].([]any)
	assert.Equal(t, float64(3), results[1].(map[string]any)["line"])
}

func TestRoot_Verbose(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "timelang.yml", "output: text\n")

	_, errOut, err := run(t, "", "-v", "parse", "now")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using config file")
	assert.Contains(t, errOut, "evaluated")
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "timelang")

	_, _, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
