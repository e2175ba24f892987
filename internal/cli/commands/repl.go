package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/pkg/parser"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive expression shell",
		Long: `Start an interactive shell that parses each line and prints its
canonical form. Dot-commands inspect tokens and trees or switch the rule.

Type .help inside the shell for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}

	cmd.Flags().String("as", "", "Grammar rule to start with")
	cmd.Flags().String("prompt", "", "Prompt string")
	cmd.Flags().String("history-file", "", "History file path")
	return cmd
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	prompt := cmdCtx.Cfg.REPL.Prompt
	if f := cmd.Flags().Lookup("prompt"); f != nil && f.Changed {
		prompt = f.Value.String()
	}
	history := cmdCtx.Cfg.REPL.HistoryFile
	if f := cmd.Flags().Lookup("history-file"); f != nil && f.Changed {
		history = f.Value.String()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     history,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "timelang REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")

	s := &replSession{ctx: cmdCtx}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.handle(line) {
			return nil
		}
	}
}

func replCompleter() *readline.PrefixCompleter {
	ruleItems := make([]readline.PrefixCompleterInterface, 0, len(parser.Rules()))
	for _, name := range parser.Rules() {
		ruleItems = append(ruleItems, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem(".tokens"),
		readline.PcItem(".ast"),
		readline.PcItem(".rules"),
		readline.PcItem(".as", ruleItems...),
		readline.PcItem("from"),
		readline.PcItem("next"),
		readline.PcItem("last"),
		readline.PcItem("the day after tomorrow"),
		readline.PcItem("the day before yesterday"),
	)
}

// replSession evaluates REPL lines. It is separate from the readline loop
// so it can run against plain buffers.
type replSession struct {
	ctx *CommandContext
}

// handle processes one input line and reports whether the session ended.
func (s *replSession) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dot(line)
	}
	s.evaluate(line)
	return false
}

func (s *replSession) dot(line string) bool {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	r := s.ctx.Renderer

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.Writer())

	case ".rules":
		r.Println(strings.Join(parser.Rules(), " "))

	case ".as":
		if rest == "" {
			r.Printf("rule: %s\n", s.ctx.Engine.Rule())
			return false
		}
		if !slices.Contains(parser.Rules(), rest) {
			r.Error((&parser.UnknownRuleError{Rule: rest}).Error())
			return false
		}
		eng, err := engine.New(engine.Config{Workers: s.ctx.Cfg.Workers, Rule: rest, Logger: s.ctx.Logger})
		if err != nil {
			r.Error(err.Error())
			return false
		}
		s.ctx.Engine = eng
		r.Printf("rule: %s\n", rest)

	case ".tokens":
		for _, t := range tokenRows(parser.Tokenize(rest)) {
			r.Printf("%d:%d\t%s\t%q\n", t.Line, t.Column, t.Type, t.Literal)
		}

	case ".ast":
		res := s.ctx.Engine.Evaluate(rest)
		if !res.OK() {
			writeDiagnostic(r, "<input>", res)
			return false
		}
		r.Printf("%s", res.Tree().Dump())

	default:
		r.Error(fmt.Sprintf("unknown command %s (type .help)", command))
	}
	return false
}

func (s *replSession) evaluate(line string) {
	r := s.ctx.Renderer
	res := s.ctx.Engine.Evaluate(line)
	if !res.OK() {
		writeDiagnostic(r, "<input>", res)
		return
	}
	r.Printf("%s %s\n", res.Canonical, r.Muted("("+kindLabel(res)+")"))
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `Commands:
  <expression>     Parse and print the canonical form
  .tokens <expr>   Show lexer tokens
  .ast <expr>      Show the syntax tree
  .as [rule]       Show or switch the grammar rule
  .rules           List grammar rules
  .help            Show this help
  .quit, .exit     Leave the shell
`)
}
