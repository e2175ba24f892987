package core

// Node is implemented by every AST node, from scalar fields up to
// TimeExpression.
type Node interface {
	node()
}

// TimeExpression is the root of the AST: a Specific point in time, a
// TimeRange or a Duration.
type TimeExpression interface {
	Node
	timeExpression()
}

// PointInTime is either an AbsoluteTime or a RelativeTime.
type PointInTime interface {
	Node
	pointInTime()
}

// AbsoluteTime is a Date or a DateTime.
type AbsoluteTime interface {
	PointInTime
	Anchor
	absoluteTime()
}

// RelativeTime is a Directional, NamedRelativeTime, Next or Last.
type RelativeTime interface {
	PointInTime
	relativeTime()
}

// Anchor is the fixed reference an After or Before direction attaches a
// duration to: an AbsoluteTime, a NamedRelativeTime, Next or Last.
type Anchor interface {
	Node
	anchor()
}

// Kind names the top-level variant of a TimeExpression.
type Kind string

// Expression kinds.
const (
	KindPoint    Kind = "point"
	KindRange    Kind = "range"
	KindDuration Kind = "duration"
)

// KindOf returns the variant of e.
func KindOf(e TimeExpression) Kind {
	switch e.(type) {
	case TimeRange:
		return KindRange
	case Duration:
		return KindDuration
	default:
		return KindPoint
	}
}

// Specific wraps a PointInTime as a TimeExpression.
type Specific struct {
	Point PointInTime
}

func (Specific) node()           {}
func (Specific) timeExpression() {}

// TimeRange is an ordered (start, end) pair. Start is not required to
// precede End.
type TimeRange struct {
	Start PointInTime
	End   PointInTime
}

func (TimeRange) node()           {}
func (TimeRange) timeExpression() {}
