// Package engine evaluates timelang expressions for the CLI and the HTTP
// server. It wraps the parser and the formatter, turns parse failures into
// reportable results, and fans batches out over a bounded worker pool.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/format"
	"github.com/leapstack-labs/timelang/pkg/parser"
)

// Engine evaluates expressions against a fixed grammar rule.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rule    string
	workers int
	logger  *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Workers bounds batch concurrency. Zero means GOMAXPROCS.
	Workers int
	// Rule is the grammar rule inputs are parsed as. Empty means the
	// top-level expression rule.
	Rule string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine after checking cfg.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rule := cfg.Rule
	if rule == "" {
		rule = parser.DefaultRule
	}
	if !slices.Contains(parser.Rules(), rule) {
		return nil, &parser.UnknownRuleError{Rule: rule}
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		rule:    rule,
		workers: workers,
		logger:  logger,
	}, nil
}

// Rule returns the rule the engine parses with by default.
func (e *Engine) Rule() string {
	return e.rule
}

// Workers returns the batch concurrency limit.
func (e *Engine) Workers() int {
	return e.workers
}

// Result is the outcome of evaluating one input.
type Result struct {
	// Line is the 1-based source line, or the 1-based position in a batch.
	Line  int    `json:"line,omitempty" yaml:"line,omitempty"`
	Input string `json:"input" yaml:"input"`
	Rule  string `json:"rule" yaml:"rule"`
	// Kind is point, range or duration. It is empty for rules below the
	// level of a point in time, such as hour or month.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	// NodeType names the AST node, such as Specific or Hour12.
	NodeType  string     `json:"node,omitempty" yaml:"node,omitempty"`
	Canonical string     `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`

	Node core.Node `json:"-" yaml:"-"`
	Err  error     `json:"-" yaml:"-"`
}

// ErrorInfo is the serializable form of a failed evaluation.
type ErrorInfo struct {
	Message string `json:"message" yaml:"message"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// OK reports whether the input parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Tree returns the labelled AST, or nil for a failed result.
func (r Result) Tree() *format.Tree {
	if r.Node == nil {
		return nil
	}
	return format.Describe(r.Node)
}

// Evaluate parses input with the engine's rule.
func (e *Engine) Evaluate(input string) Result {
	return e.EvaluateAs(e.rule, input)
}

// EvaluateAs parses input with the named rule. An empty rule means the
// engine's rule.
func (e *Engine) EvaluateAs(rule, input string) Result {
	if rule == "" {
		rule = e.rule
	}
	res := Result{Input: input, Rule: rule}

	node, err := parser.ParseAs(rule, input)
	if err != nil {
		res.Err = err
		res.Error = errorInfo(err)
		e.logger.Debug("evaluation failed",
			slog.String("rule", rule),
			slog.String("input", input),
			slog.String("error", err.Error()))
		return res
	}

	res.Node = node
	res.Kind = kindOf(node)
	res.NodeType = format.NodeName(node)
	res.Canonical = format.Format(node)
	e.logger.Debug("evaluated",
		slog.String("rule", rule),
		slog.String("kind", res.Kind),
		slog.String("node", res.NodeType),
		slog.String("canonical", res.Canonical))
	return res
}

// kindOf classifies node as a point, range or duration expression.
func kindOf(node core.Node) string {
	switch n := node.(type) {
	case core.TimeExpression:
		return string(core.KindOf(n))
	case core.PointInTime:
		return string(core.KindPoint)
	}
	return ""
}

func errorInfo(err error) *ErrorInfo {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ErrorInfo{
			Message: pe.Message,
			Kind:    pe.Kind.String(),
			Line:    pe.Pos.Line,
			Column:  pe.Pos.Column,
		}
	}
	return &ErrorInfo{Message: err.Error()}
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}
