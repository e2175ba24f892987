package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/timelang/pkg/format"
	"github.com/leapstack-labs/timelang/pkg/parser"
)

// generateGrammarDocs writes grammar.md: every rule with a sample input and
// its canonical form, followed by the recognized words.
func generateGrammarDocs(outDir string) error {
	log.Printf("Generating grammar docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	page, err := grammarPage()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "grammar.md"), page, 0600); err != nil {
		return err
	}
	log.Printf("  Generated grammar.md")
	return nil
}

func grammarPage() ([]byte, error) {
	w := NewMarkdownWriter()
	w.Frontmatter("Grammar", "Grammar rules and keywords of the timelang DSL")
	w.GeneratedMarker()

	w.Header(1, "Grammar")
	w.Paragraph(fmt.Sprintf("Every rule below can be used as a parse entry point with %s. Without it, input is parsed as %s.",
		InlineCode("--as"), InlineCode(parser.DefaultRule)))

	w.Header(2, "Rules")
	var rows [][]string
	for _, rule := range parser.Rules() {
		example := parser.Example(rule)
		node, err := parser.ParseAs(rule, example)
		if err != nil {
			return nil, fmt.Errorf("example for rule %s: %w", rule, err)
		}
		rows = append(rows, []string{
			InlineCode(rule),
			InlineCode(example),
			InlineCode(format.Format(node)),
			format.NodeName(node),
		})
	}
	w.Table([]string{"Rule", "Example", "Canonical", "Node"}, rows)

	w.Header(2, "Keywords")
	w.Paragraph("Keywords are matched without regard to case and none of them is reserved.")
	byCategory := make(map[string][]string)
	var order []string
	for _, kw := range parser.Keywords() {
		if _, ok := byCategory[kw.Category]; !ok {
			order = append(order, kw.Category)
		}
		byCategory[kw.Category] = append(byCategory[kw.Category], InlineCode(kw.Word))
	}
	var kwRows [][]string
	for _, category := range order {
		kwRows = append(kwRows, []string{category, strings.Join(byCategory[category], ", ")})
	}
	w.Table([]string{"Category", "Words"}, kwRows)

	return w.Bytes(), nil
}
