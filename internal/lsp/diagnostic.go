package lsp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/pkg/parser"
)

const diagnosticSource = "timelang"

// publishDiagnostics parses every expression line of the document and
// sends one diagnostic per line that fails.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) error {
	doc := s.documents.Get(uri)
	if doc == nil {
		return nil
	}
	diags, err := s.diagnose(ctx, doc)
	if err != nil {
		return err
	}
	s.logger.Debug("diagnostics",
		slog.String("uri", uri),
		slog.Int("count", len(diags)))
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Version,
		Diagnostics: diags,
	})
	return nil
}

func (s *Server) diagnose(ctx context.Context, doc *Document) ([]Diagnostic, error) {
	results, err := s.engine.EvaluateReader(ctx, strings.NewReader(doc.Content))
	if err != nil {
		return nil, err
	}
	diags := []Diagnostic{}
	for _, res := range results {
		if res.OK() {
			continue
		}
		diags = append(diags, diagnosticFor(doc, res))
	}
	return diags, nil
}

// diagnosticFor places a failed result on the token its error points at.
// Errors at end of input mark the end of the line; errors without a column
// cover the whole expression.
func diagnosticFor(doc *Document, res engine.Result) Diagnostic {
	line := res.Line - 1
	text := doc.Line(line)

	start := len(text) - len(strings.TrimLeft(text, " \t"))
	end := len(strings.TrimRight(text, " \t"))
	if res.Error.Column > 0 {
		start, end = tokenRange(text, res.Error.Column-1)
	}

	return Diagnostic{
		Range: Range{
			Start: Position{Line: uint32(line), Character: uint32(start)},
			End:   Position{Line: uint32(line), Character: uint32(end)},
		},
		Severity: DiagnosticSeverityError,
		Code:     res.Error.Kind,
		Source:   diagnosticSource,
		Message:  res.Error.Message,
	}
}

// tokenRange returns the byte range of the token of text that starts at
// or covers offset.
func tokenRange(text string, offset int) (int, int) {
	for _, tok := range parser.Tokenize(text) {
		span := tok.Span()
		if span.Start.Offset == offset || span.Contains(offset) {
			return span.Start.Offset, span.Start.Offset + span.Len()
		}
	}
	offset = min(offset, len(text))
	return offset, offset
}
