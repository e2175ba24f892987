package format

import (
	"fmt"

	"github.com/leapstack-labs/timelang/pkg/core"
)

// durationOrder is the rendering order of Duration components, largest
// first.
var durationOrder = [...]core.TimeUnit{
	core.Years, core.Months, core.Weeks, core.Days, core.Hours, core.Minutes,
}

func (p *Printer) formatNode(node core.Node) {
	switch n := node.(type) {
	case nil:
	case core.Specific:
		p.formatNode(n.Point)
	case core.TimeRange:
		p.write("from ")
		p.formatNode(n.Start)
		p.write(" to ")
		p.formatNode(n.End)
	case core.Duration:
		p.formatDuration(n)
	case core.Date:
		p.formatDate(n)
	case core.DateTime:
		p.formatDate(n.Date)
		p.write(" at ")
		p.formatTime(n.Time)
	case core.Time:
		p.formatTime(n)
	case core.Hour:
		p.formatHour(n)
	case core.Directional:
		p.formatDuration(n.Duration)
		p.space()
		p.formatDirection(n.Direction)
	case core.TimeDirection:
		p.formatDirection(n)
	case core.Next:
		p.write("next ")
		p.write(n.Unit.String())
	case core.Last:
		p.write("last ")
		p.write(n.Unit.String())
	case core.NamedRelativeTime:
		p.write(n.String())
	case core.RelativeTimeUnit:
		p.write(n.String())
	case core.TimeUnit:
		p.write(n.String())
	case core.AmPm:
		p.write(n.String())
	case core.Number:
		p.uint(n.Uint64())
	case core.DayOfMonth:
		p.uint(uint64(n))
	case core.Month:
		p.uint(uint64(n))
	case core.Year:
		p.uint(uint64(n))
	case core.Minute:
		p.write(fmt.Sprintf("%02d", uint8(n)))
	default:
		p.write(fmt.Sprintf("<%T>", n))
	}
}

// formatDuration prints non-zero components largest first, singular for a
// count of one. An all-zero duration prints as "0 minutes".
func (p *Printer) formatDuration(d core.Duration) {
	if d.IsZero() {
		p.write("0 minutes")
		return
	}

	units := make([]core.TimeUnit, 0, len(durationOrder))
	for _, u := range durationOrder {
		if d.Get(u) != 0 {
			units = append(units, u)
		}
	}

	p.formatList(len(units), func(i int) {
		u := units[i]
		n := d.Get(u)
		p.uint(n.Uint64())
		p.space()
		if n == 1 {
			p.write(u.Singular())
		} else {
			p.write(u.String())
		}
	}, ", ")
}

func (p *Printer) formatDate(d core.Date) {
	p.write(fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year))
}

func (p *Printer) formatTime(t core.Time) {
	p.write(fmt.Sprintf("%d:%02d", t.Hour.Value, t.Minute))
	if t.Hour.Clock == core.Clock12 {
		p.space()
		p.write(t.Hour.Meridiem.String())
	}
}

func (p *Printer) formatHour(h core.Hour) {
	p.uint(uint64(h.Value))
	if h.Clock == core.Clock12 {
		p.space()
		p.write(h.Meridiem.String())
	}
}

func (p *Printer) formatDirection(d core.TimeDirection) {
	switch d.Kind {
	case core.DirectionAgo:
		p.write("ago")
		return
	case core.DirectionFromNow:
		p.write("from now")
		return
	case core.DirectionAfter:
		p.write("after ")
	case core.DirectionBefore:
		p.write("before ")
	}
	p.formatNode(d.Anchor)
}
