package format

import (
	"strconv"

	"github.com/leapstack-labs/timelang/pkg/core"
)

// Tree describes an AST node for display and serialization. Field is the
// name the node has in its parent and is empty at the root.
type Tree struct {
	Field    string  `json:"field,omitempty" yaml:"field,omitempty"`
	Node     string  `json:"node" yaml:"node"`
	Text     string  `json:"text" yaml:"text"`
	Children []*Tree `json:"children,omitempty" yaml:"children,omitempty"`
}

// Describe builds the Tree for node.
func Describe(node core.Node) *Tree {
	return describe("", node)
}

func describe(field string, node core.Node) *Tree {
	t := &Tree{Field: field, Node: NodeName(node), Text: Format(node)}

	add := func(name string, child core.Node) {
		t.Children = append(t.Children, describe(name, child))
	}

	switch n := node.(type) {
	case core.Specific:
		add("Point", n.Point)
	case core.TimeRange:
		add("Start", n.Start)
		add("End", n.End)
	case core.Duration:
		for _, u := range core.TimeUnits {
			if v := n.Get(u); v != 0 {
				add(fieldName(u), v)
			}
		}
	case core.Date:
		add("Month", n.Month)
		add("Day", n.Day)
		add("Year", n.Year)
	case core.DateTime:
		add("Date", n.Date)
		add("Time", n.Time)
	case core.Time:
		add("Hour", n.Hour)
		add("Minute", n.Minute)
	case core.Directional:
		add("Duration", n.Duration)
		add("Direction", n.Direction)
	case core.TimeDirection:
		if n.Anchor != nil {
			add("Anchor", n.Anchor)
		}
	case core.Next:
		add("Unit", n.Unit)
	case core.Last:
		add("Unit", n.Unit)
	}
	return t
}

// fieldName is the Duration field holding u.
func fieldName(u core.TimeUnit) string {
	s := u.String()
	return string(s[0]-'a'+'A') + s[1:]
}

// NodeName names the variant of node: its type name, or for a
// TimeDirection the specific direction such as AfterNamed or Ago.
func NodeName(node core.Node) string {
	switch n := node.(type) {
	case nil:
		return "nil"
	case core.Specific:
		return "Specific"
	case core.TimeRange:
		return "TimeRange"
	case core.Duration:
		return "Duration"
	case core.Date:
		return "Date"
	case core.DateTime:
		return "DateTime"
	case core.Time:
		return "Time"
	case core.Hour:
		if n.Clock == core.Clock12 {
			return "Hour12"
		}
		return "Hour24"
	case core.Directional:
		return "Directional"
	case core.TimeDirection:
		return directionName(n)
	case core.Next:
		return "Next"
	case core.Last:
		return "Last"
	case core.NamedRelativeTime:
		return "NamedRelativeTime"
	case core.RelativeTimeUnit:
		return "RelativeTimeUnit"
	case core.TimeUnit:
		return "TimeUnit"
	case core.AmPm:
		return "AmPm"
	case core.Number:
		return "Number"
	case core.DayOfMonth:
		return "DayOfMonth"
	case core.Month:
		return "Month"
	case core.Year:
		return "Year"
	case core.Minute:
		return "Minute"
	}
	return "Node"
}

func directionName(d core.TimeDirection) string {
	switch d.Kind {
	case core.DirectionAgo:
		return "Ago"
	case core.DirectionFromNow:
		return "FromNow"
	}

	prefix := "After"
	if d.Kind == core.DirectionBefore {
		prefix = "Before"
	}
	switch d.Anchor.(type) {
	case core.Date, core.DateTime:
		return prefix + "Absolute"
	case core.NamedRelativeTime:
		return prefix + "Named"
	case core.Next:
		return prefix + "Next"
	case core.Last:
		return prefix + "Last"
	}
	return prefix
}

// Dump renders the tree as indented text, one node per line:
//
//	Directional "3 days ago"
//	  Duration: Duration "3 days"
//	    Days: Number "3"
//	  Direction: Ago "ago"
func (t *Tree) Dump() string {
	p := newPrinter()
	p.dumpTree(t)
	return p.String()
}

func (p *Printer) dumpTree(t *Tree) {
	if t.Field != "" {
		p.write(t.Field + ": ")
	}
	p.write(t.Node)
	p.space()
	p.write(strconv.Quote(t.Text))
	p.writeln()

	p.indent()
	for _, c := range t.Children {
		p.dumpTree(c)
	}
	p.dedent()
}
