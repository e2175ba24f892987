package core

import "cmp"

// Compare orders two nodes structurally: first by variant declaration
// order, then field by field in declaration order. It returns -1, 0 or +1.
//
// The ordering is syntactic. "tomorrow" sorts after "now" because Tomorrow
// is declared later, and a Date sorts by month before day; neither says
// anything about which instant comes first.
func Compare(a, b Node) int {
	if c := cmp.Compare(ordinal(a), ordinal(b)); c != 0 {
		return c
	}

	switch x := a.(type) {
	case Specific:
		return Compare(x.Point, b.(Specific).Point)
	case TimeRange:
		y := b.(TimeRange)
		return cmp.Or(Compare(x.Start, y.Start), Compare(x.End, y.End))
	case Duration:
		y := b.(Duration)
		for _, u := range TimeUnits {
			if c := cmp.Compare(x.Get(u), y.Get(u)); c != 0 {
				return c
			}
		}
		return 0
	case Date:
		y := b.(Date)
		return cmp.Or(
			cmp.Compare(x.Month, y.Month),
			cmp.Compare(x.Day, y.Day),
			cmp.Compare(x.Year, y.Year),
		)
	case DateTime:
		y := b.(DateTime)
		return cmp.Or(Compare(x.Date, y.Date), Compare(x.Time, y.Time))
	case Time:
		y := b.(Time)
		return cmp.Or(Compare(x.Hour, y.Hour), cmp.Compare(x.Minute, y.Minute))
	case Hour:
		y := b.(Hour)
		return cmp.Or(
			cmp.Compare(x.Clock, y.Clock),
			cmp.Compare(x.Value, y.Value),
			cmp.Compare(x.Meridiem, y.Meridiem),
		)
	case Directional:
		y := b.(Directional)
		return cmp.Or(Compare(x.Duration, y.Duration), Compare(x.Direction, y.Direction))
	case TimeDirection:
		y := b.(TimeDirection)
		if c := cmp.Compare(directionRank(x), directionRank(y)); c != 0 {
			return c
		}
		return Compare(x.Anchor, y.Anchor)
	case Next:
		return cmp.Compare(x.Unit, b.(Next).Unit)
	case Last:
		return cmp.Compare(x.Unit, b.(Last).Unit)
	case NamedRelativeTime:
		return cmp.Compare(x, b.(NamedRelativeTime))
	case Number:
		return cmp.Compare(x, b.(Number))
	case DayOfMonth:
		return cmp.Compare(x, b.(DayOfMonth))
	case Month:
		return cmp.Compare(x, b.(Month))
	case Year:
		return cmp.Compare(x, b.(Year))
	case Minute:
		return cmp.Compare(x, b.(Minute))
	case AmPm:
		return cmp.Compare(x, b.(AmPm))
	case TimeUnit:
		return cmp.Compare(x, b.(TimeUnit))
	case RelativeTimeUnit:
		return cmp.Compare(x, b.(RelativeTimeUnit))
	}
	return 0
}

// ordinal places every node type in one sequence that agrees with the
// declaration order of each union: Specific < TimeRange < Duration for
// TimeExpression, Date < DateTime < Directional < Named < Next < Last for
// PointInTime.
func ordinal(n Node) int {
	switch n.(type) {
	case nil:
		return -1
	case Specific:
		return 0
	case TimeRange:
		return 1
	case Duration:
		return 2
	case Date:
		return 3
	case DateTime:
		return 4
	case Directional:
		return 5
	case NamedRelativeTime:
		return 6
	case Next:
		return 7
	case Last:
		return 8
	case TimeDirection:
		return 9
	case Time:
		return 10
	case Hour:
		return 11
	case Number:
		return 12
	case DayOfMonth:
		return 13
	case Month:
		return 14
	case Year:
		return 15
	case Minute:
		return 16
	case AmPm:
		return 17
	case TimeUnit:
		return 18
	case RelativeTimeUnit:
		return 19
	}
	return 20
}

// directionRank is the declaration order of the ten direction variants:
// AfterAbsolute, BeforeAbsolute, AfterNamed, BeforeNamed, BeforeNext,
// BeforeLast, AfterNext, AfterLast, Ago, FromNow.
func directionRank(d TimeDirection) int {
	switch d.Kind {
	case DirectionAgo:
		return 8
	case DirectionFromNow:
		return 9
	}
	after := d.Kind == DirectionAfter
	switch d.Anchor.(type) {
	case Date, DateTime:
		return pick(after, 0, 1)
	case NamedRelativeTime:
		return pick(after, 2, 3)
	case Next:
		return pick(after, 6, 4)
	case Last:
		return pick(after, 7, 5)
	}
	return 10
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
