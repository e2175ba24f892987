package commands

import (
	"github.com/leapstack-labs/timelang/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewASTCommand creates the ast command.
func NewASTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [expression...]",
		Short: "Print the syntax tree of an expression",
		Long: `Print the labelled syntax tree of a time expression.

Each line shows the field name, the node kind and the node's canonical text.`,
		Example: `  timelang ast "the day after tomorrow"
  timelang ast --as datetime "1/2/2024 at 9:05 pm"
  timelang ast -o yaml 2 weeks from now`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args)
		},
	}

	cmd.Flags().String("as", "", "Grammar rule to parse with")
	return cmd
}

func runAST(cmd *cobra.Command, args []string) error {
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
	if !res.OK() {
		if ok, err := r.Structured(parseOutput{Input: res.Input, Rule: res.Rule, Error: res.Error}); ok {
			if err != nil {
				return err
			}
			return ErrInvalid
		}
		writeDiagnostic(r, "<input>", res)
		return ErrInvalid
	}

	tree := res.Tree()
	if ok, err := r.Structured(tree); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCodeBlock("text", tree.Dump()))
		return nil
	}
	r.Printf("%s", tree.Dump())
	return nil
}
