package format

import "github.com/leapstack-labs/timelang/pkg/core"

// Format renders node as canonical text. For every node v the parser
// accepts the output and yields v again.
func Format(node core.Node) string {
	p := newPrinter()
	p.formatNode(node)
	return p.String()
}
