package lsp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/timelang/internal/engine"
)

func (s *Server) handleFormatting(ctx context.Context, msg *JSONRPCMessage) error {
	var params DocumentFormattingParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		s.sendResponse(msg.ID, nil, nil)
		return nil
	}

	edits, err := s.formatEdits(ctx, doc)
	if err != nil {
		var le *engine.LineError
		if !errors.As(err, &le) {
			s.sendResponse(msg.ID, nil, nil)
			return err
		}
		s.sendNotification("window/showMessage", &ShowMessageParams{
			Type:    MessageTypeWarning,
			Message: fmt.Sprintf("cannot format: line %d: %s", le.Line, le.Result.Error.Message),
		})
		s.sendResponse(msg.ID, nil, nil)
		return nil
	}
	s.sendResponse(msg.ID, edits, nil)
	return nil
}

// formatEdits returns one edit per line whose canonical form differs.
func (s *Server) formatEdits(ctx context.Context, doc *Document) ([]TextEdit, error) {
	formatted, changed, err := s.engine.FormatDocument(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	out := strings.Split(formatted, "\n")
	edits := make([]TextEdit, 0, len(changed))
	for _, n := range changed {
		line := n - 1
		edits = append(edits, TextEdit{
			Range: Range{
				Start: Position{Line: uint32(line)},
				End:   Position{Line: uint32(line), Character: uint32(len(doc.Line(line)))},
			},
			NewText: strings.TrimSuffix(out[line], "\r"),
		})
	}
	return edits, nil
}
