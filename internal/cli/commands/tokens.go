package commands

import (
	"strconv"

	"github.com/leapstack-labs/timelang/pkg/parser"
	"github.com/leapstack-labs/timelang/pkg/token"
	"github.com/spf13/cobra"
)

// tokenOutput is the structured form of one token.
type tokenOutput struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression...]",
		Short: "Show the lexer tokens of an expression",
		Long: `Show the tokens the lexer produces for an expression, ending with EOF.

Every word is an IDENT; keywords are recognised by the parser.`,
		Example: `  timelang tokens "5 PM"
  echo "20/4/2021" | timelang tokens -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args)
		},
	}
}

func runTokens(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	input, err := readExpression(cmd, args)
	if err != nil {
		return err
	}
	toks := tokenRows(parser.Tokenize(input))

	if ok, err := r.Structured(toks); ok {
		return err
	}

	rows := make([][]string, 0, len(toks))
	for _, t := range toks {
		rows = append(rows, []string{
			t.Type,
			t.Literal,
			strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Column),
		})
	}
	r.Table([]string{"Type", "Literal", "Position"}, rows)
	return nil
}

func tokenRows(toks []token.Token) []tokenOutput {
	out := make([]tokenOutput, 0, len(toks))
	for _, t := range toks {
		out = append(out, tokenOutput{
			Type:    t.Type.String(),
			Literal: t.Literal,
			Line:    t.Pos.Line,
			Column:  t.Pos.Column,
		})
	}
	return out
}
