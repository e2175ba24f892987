// Package commands implements the timelang subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/timelang/internal/cli/config"
	"github.com/leapstack-labs/timelang/internal/cli/output"
	intconfig "github.com/leapstack-labs/timelang/internal/config"
	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrInvalid is returned when one or more expressions failed to parse. The
// diagnostics have already been written.
var ErrInvalid = errors.New("invalid expressions")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *intconfig.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	rule := cfg.Rule
	if f := cmd.Flags().Lookup("as"); f != nil && f.Changed {
		rule = f.Value.String()
	}

	eng, err := engine.New(engine.Config{
		Workers: cfg.Workers,
		Rule:    rule,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}

// getConfig returns the loaded configuration, or defaults when the root
// command did not load one (commands run directly in tests).
func getConfig() *intconfig.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	var cfg intconfig.Config
	intconfig.ApplyDefaults(&cfg)
	return &cfg
}

// readExpression joins args into one expression, or reads stdin when there
// are no args or the only arg is "-".
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", errors.New("no expression given")
		}
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return strings.Join(args, " "), nil
}

// writeDiagnostic prints a failed result with a caret under the column.
func writeDiagnostic(r *output.Renderer, source string, res engine.Result) {
	w := r.ErrWriter()
	info := res.Error
	if info == nil {
		return
	}

	loc := source
	if info.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", source, info.Line, info.Column)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", loc, r.Styles().Error.Render(info.Message))

	if info.Column > 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", errorLine(res.Input, info.Line))
		_, _ = fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", info.Column-1), r.Styles().Caret.Render("^"))
	}
}

// errorLine returns the line of a multi-line input that an error points at.
// Single-line inputs come back whole, since batch results carry document
// line numbers.
func errorLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if len(lines) == 1 || line < 1 || line > len(lines) {
		return input
	}
	return strings.TrimRight(lines[line-1], "\r")
}
