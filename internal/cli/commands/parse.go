package commands

import (
	"github.com/leapstack-labs/timelang/internal/cli/output"
	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/pkg/format"
	"github.com/spf13/cobra"
)

// parseOutput is the structured form of a parse result.
type parseOutput struct {
	Input     string            `json:"input" yaml:"input"`
	Rule      string            `json:"rule" yaml:"rule"`
	Kind      string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Node      string            `json:"node,omitempty" yaml:"node,omitempty"`
	Canonical string            `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	AST       *format.Tree      `json:"ast,omitempty" yaml:"ast,omitempty"`
	Error     *engine.ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expression...]",
		Short: "Parse an expression and print its canonical form",
		Long: `Parse a time expression and print the node kind and canonical text.

Arguments are joined with spaces. With no arguments, or "-", the expression
is read from stdin.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Parse a relative point in time
  timelang parse 3 days ago

  # Parse with a specific grammar rule
  timelang parse --as duration "1 hour and 5 minutes"

  # Full AST as JSON
  timelang parse -o json "from 1/2/2024 to next week"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args)
		},
	}

	cmd.Flags().String("as", "", "Grammar rule to parse with (list them with: timelang rules)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	input, err := readExpression(cmd, args)
	if err != nil {
		return err
	}
	res := cmdCtx.Engine.Evaluate(input)

	if ok, err := r.Structured(parseOutput{
		Input:     res.Input,
		Rule:      res.Rule,
		Kind:      res.Kind,
		Node:      res.NodeType,
		Canonical: res.Canonical,
		AST:       res.Tree(),
		Error:     res.Error,
	}); ok {
		if err != nil {
			return err
		}
		if !res.OK() {
			return ErrInvalid
		}
		return nil
	}

	if !res.OK() {
		writeDiagnostic(r, "<input>", res)
		return ErrInvalid
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		if res.Kind != "" {
			r.Println(output.FormatKeyValue("Kind", res.Kind))
		}
		r.Println(output.FormatKeyValue("Node", res.NodeType))
		r.Println(output.FormatKeyValue("Canonical", output.FormatCode(res.Canonical)))
		return nil
	}

	r.Printf("%s %s\n", res.Canonical, r.Muted("("+kindLabel(res)+")"))
	return nil
}

// kindLabel describes a result as "kind, node", or just the node for
// rules below a point in time.
func kindLabel(res engine.Result) string {
	if res.Kind == "" {
		return res.NodeType
	}
	return res.Kind + ", " + res.NodeType
}
