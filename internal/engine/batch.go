package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Line is one expression read from a document.
type Line struct {
	Number int
	Text   string
}

// EvaluateAll evaluates inputs concurrently. Results keep input order and
// carry their 1-based batch position in Line.
func (e *Engine) EvaluateAll(ctx context.Context, inputs []string) ([]Result, error) {
	lines := make([]Line, len(inputs))
	for i, in := range inputs {
		lines[i] = Line{Number: i + 1, Text: in}
	}
	return e.evaluateLines(ctx, lines)
}

// EvaluateReader evaluates every expression line in r. Blank lines and
// lines starting with '#' are skipped; Line holds the source line number.
func (e *Engine) EvaluateReader(ctx context.Context, r io.Reader) ([]Result, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return e.evaluateLines(ctx, lines)
}

// MaxLineLength is the longest input line ReadLines accepts.
const MaxLineLength = 1 << 20

// ReadLines collects the expression lines of r.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if isPassthrough(text) {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func (e *Engine) evaluateLines(ctx context.Context, lines []Line) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := e.Evaluate(line.Text)
			res.Line = line.Number
			if res.Error != nil && res.Error.Line != 0 {
				res.Error.Line = line.Number
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	e.logger.Info("batch evaluated",
		slog.Int("total", summary.Total),
		slog.Int("invalid", summary.Invalid),
		slog.Int("workers", e.workers),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}

// isPassthrough reports whether a document line carries no expression.
func isPassthrough(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
