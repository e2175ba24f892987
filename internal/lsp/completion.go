package lsp

import (
	"strings"

	"github.com/leapstack-labs/timelang/pkg/parser"
)

func (s *Server) handleCompletion(msg *JSONRPCMessage) error {
	var params CompletionParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	items := []CompletionItem{}
	if doc := s.documents.Get(params.TextDocument.URI); doc != nil {
		items = completions(doc, params.Position)
	}
	s.sendResponse(msg.ID, &CompletionList{Items: items}, nil)
	return nil
}

// completions offers every keyword that extends the word left of pos.
// Nothing is offered inside a comment.
func completions(doc *Document, pos Position) []CompletionItem {
	line := doc.Line(int(pos.Line))
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return []CompletionItem{}
	}

	prefix, rng := doc.WordBefore(pos)
	prefix = strings.ToLower(prefix)

	items := []CompletionItem{}
	for _, kw := range parser.Keywords() {
		if !strings.HasPrefix(kw.Word, prefix) {
			continue
		}
		items = append(items, CompletionItem{
			Label:    kw.Word,
			Kind:     completionKind(kw.Category),
			Detail:   kw.Category,
			TextEdit: &TextEdit{Range: rng, NewText: kw.Word},
		})
	}
	return items
}

func completionKind(category string) CompletionItemKind {
	switch category {
	case parser.CategoryTimeUnit, parser.CategoryRelativeUnit:
		return CompletionItemKindUnit
	case parser.CategoryNamed:
		return CompletionItemKindConstant
	case parser.CategoryMeridiem:
		return CompletionItemKindValue
	default:
		return CompletionItemKindKeyword
	}
}
