package core

// Next is "next UNIT". It is both a RelativeTime and an Anchor.
type Next struct {
	Unit RelativeTimeUnit
}

func (Next) node()         {}
func (Next) pointInTime()  {}
func (Next) relativeTime() {}
func (Next) anchor()       {}

// Last is "last UNIT". It is both a RelativeTime and an Anchor.
type Last struct {
	Unit RelativeTimeUnit
}

func (Last) node()         {}
func (Last) pointInTime()  {}
func (Last) relativeTime() {}
func (Last) anchor()       {}

// Directional is a Duration offset in a TimeDirection, e.g. "3 days ago".
type Directional struct {
	Duration  Duration
	Direction TimeDirection
}

func (Directional) node()         {}
func (Directional) pointInTime()  {}
func (Directional) relativeTime() {}

// DirectionKind is the keyword a TimeDirection starts with.
type DirectionKind uint8

// Direction kinds.
const (
	DirectionAfter DirectionKind = iota
	DirectionBefore
	DirectionAgo
	DirectionFromNow
)

// TimeDirection attaches a Duration to an Anchor (After, Before) or is an
// anchor-free marker (Ago, FromNow, whose Anchor is nil).
type TimeDirection struct {
	Kind   DirectionKind
	Anchor Anchor
}

func (TimeDirection) node() {}

// AfterAbsolute is "after <date>" or "after <date> at <time>".
func AfterAbsolute(t AbsoluteTime) TimeDirection {
	return TimeDirection{Kind: DirectionAfter, Anchor: t}
}

// BeforeAbsolute is "before <date>" or "before <date> at <time>".
func BeforeAbsolute(t AbsoluteTime) TimeDirection {
	return TimeDirection{Kind: DirectionBefore, Anchor: t}
}

// AfterNamed is e.g. "after tomorrow".
func AfterNamed(n NamedRelativeTime) TimeDirection {
	return TimeDirection{Kind: DirectionAfter, Anchor: n}
}

// BeforeNamed is e.g. "before yesterday".
func BeforeNamed(n NamedRelativeTime) TimeDirection {
	return TimeDirection{Kind: DirectionBefore, Anchor: n}
}

// AfterNext is e.g. "after next thursday".
func AfterNext(u RelativeTimeUnit) TimeDirection {
	return TimeDirection{Kind: DirectionAfter, Anchor: Next{Unit: u}}
}

// AfterLast is e.g. "after last month".
func AfterLast(u RelativeTimeUnit) TimeDirection {
	return TimeDirection{Kind: DirectionAfter, Anchor: Last{Unit: u}}
}

// BeforeNext is e.g. "before next tuesday".
func BeforeNext(u RelativeTimeUnit) TimeDirection {
	return TimeDirection{Kind: DirectionBefore, Anchor: Next{Unit: u}}
}

// BeforeLast is e.g. "before last week".
func BeforeLast(u RelativeTimeUnit) TimeDirection {
	return TimeDirection{Kind: DirectionBefore, Anchor: Last{Unit: u}}
}

// Ago is the "ago" marker.
func Ago() TimeDirection {
	return TimeDirection{Kind: DirectionAgo}
}

// FromNow is the "from now" marker.
func FromNow() TimeDirection {
	return TimeDirection{Kind: DirectionFromNow}
}
