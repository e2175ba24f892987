package commands

import (
	"github.com/leapstack-labs/timelang/internal/cli/output"
	"github.com/leapstack-labs/timelang/pkg/parser"
	"github.com/spf13/cobra"
)

// ruleOutput is the structured form of one grammar rule.
type ruleOutput struct {
	Name    string `json:"name" yaml:"name"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the grammar rules accepted by --as",
		Long: `List every grammar rule that parse, ast, check and the server accept
as an entry point, with a sample input for each.`,
		Example: `  timelang rules
  timelang rules -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd)
		},
	}
}

func runRules(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	var rules []ruleOutput
	for _, name := range parser.Rules() {
		rules = append(rules, ruleOutput{
			Name:    name,
			Default: name == cmdCtx.Engine.Rule(),
			Example: parser.Example(name),
		})
	}

	if ok, err := r.Structured(rules); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(1, "Grammar rules")
	}
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		name := rule.Name
		if rule.Default {
			name += " (default)"
		}
		rows = append(rows, []string{name, rule.Example})
	}
	r.Table([]string{"Rule", "Example"}, rows)
	return nil
}
