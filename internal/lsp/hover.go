package lsp

import (
	"fmt"
	"strings"
)

func (s *Server) handleHover(msg *JSONRPCMessage) error {
	var params HoverParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	var hover *Hover
	if doc := s.documents.Get(params.TextDocument.URI); doc != nil {
		hover = s.hover(doc, params.Position)
	}
	s.sendResponse(msg.ID, hover, nil)
	return nil
}

// hover describes the expression on the hovered line: its kind, canonical
// form and syntax tree. Comments, blank lines and invalid expressions get
// no hover.
func (s *Server) hover(doc *Document, pos Position) *Hover {
	text := doc.Line(int(pos.Line))
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	res := s.engine.Evaluate(text)
	if !res.OK() {
		return nil
	}

	var b strings.Builder
	if res.Kind != "" {
		fmt.Fprintf(&b, "**%s** ", res.Kind)
	}
	fmt.Fprintf(&b, "`%s`\n\n", res.Canonical)
	fmt.Fprintf(&b, "Node: %s\n\n", res.NodeType)
	b.WriteString("```text\n")
	b.WriteString(res.Tree().Dump())
	b.WriteString("```")

	start := len(text) - len(strings.TrimLeft(text, " \t"))
	end := len(strings.TrimRight(text, " \t"))
	return &Hover{
		Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: b.String()},
		Range: &Range{
			Start: Position{Line: pos.Line, Character: uint32(start)},
			End:   Position{Line: pos.Line, Character: uint32(end)},
		},
	}
}
