package parser

import (
	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// parseRelativeTime dispatches on the first word: next/last, a named idiom,
// or else a Duration followed by a TimeDirection.
func (p *Parser) parseRelativeTime() (core.RelativeTime, error) {
	switch w := word(p.token()); {
	case w == kwNext || w == kwLast:
		return p.parseNextOrLast()
	case namedLeadWords[w]:
		n, err := p.parseNamedRelativeTime()
		if err != nil {
			return nil, err
		}
		return n, nil
	}

	d, err := p.parseDuration()
	if err != nil {
		return nil, err
	}
	dir, err := p.parseTimeDirection()
	if err != nil {
		return nil, err
	}
	return core.Directional{Duration: d, Direction: dir}, nil
}

// parseNextOrLast parses "next UNIT" or "last UNIT". The caller has checked
// the first word.
func (p *Parser) parseNextOrLast() (core.RelativeTime, error) {
	isNext := word(p.next()) == kwNext
	unit, err := p.parseRelativeTimeUnit()
	if err != nil {
		return nil, err
	}
	if isNext {
		return core.Next{Unit: unit}, nil
	}
	return core.Last{Unit: unit}, nil
}

// parseNamedRelativeTime parses a single-word idiom or
// ["the"] "day" ("after" "tomorrow" | "before" "yesterday").
func (p *Parser) parseNamedRelativeTime() (core.NamedRelativeTime, error) {
	first, err := p.expect(token.IDENT, expectedNamed)
	if err != nil {
		return 0, err
	}
	if n, ok := namedWords[word(first)]; ok {
		return n, nil
	}

	if isWord(first, kwThe) && p.check(token.IDENT) {
		first = p.next()
	}
	if !isWord(first, kwDay) {
		return 0, mismatch(first, expectedNamed)
	}

	second := p.token()
	var want string
	var result core.NamedRelativeTime
	switch word(second) {
	case kwAfter:
		want, result = kwTomorrow, core.DayAfterTomorrow
	case kwBefore:
		want, result = kwYesterday, core.DayBeforeYesterday
	default:
		return 0, mismatch(second, expectedAfterBefore)
	}
	p.next()

	if _, err := p.expectWord(want); err != nil {
		return 0, err
	}
	return result, nil
}

// parseTimeDirection parses the word that ties a Duration to a point:
// after/before an anchor, "ago", or "from now".
func (p *Parser) parseTimeDirection() (core.TimeDirection, error) {
	tok, err := p.expect(token.IDENT, expectedDirection)
	if err != nil {
		return core.TimeDirection{}, err
	}

	switch word(tok) {
	case kwAfter, kwBefore:
		kind := core.DirectionAfter
		if isWord(tok, kwBefore) {
			kind = core.DirectionBefore
		}
		anchor, err := p.parseAnchor()
		if err != nil {
			return core.TimeDirection{}, err
		}
		return core.TimeDirection{Kind: kind, Anchor: anchor}, nil
	case kwAgo:
		return core.Ago(), nil
	case kwFrom:
		if _, err := p.expectWord(kwNow); err != nil {
			return core.TimeDirection{}, err
		}
		return core.FromNow(), nil
	}
	return core.TimeDirection{}, mismatch(tok, expectedDirection)
}

// parseAnchor parses what follows "after" or "before": an AbsoluteTime when
// a number comes next, otherwise next/last UNIT or a named idiom.
func (p *Parser) parseAnchor() (core.Anchor, error) {
	if p.check(token.NUMBER) {
		abs, err := p.parseAbsoluteTime()
		if err != nil {
			return nil, err
		}
		return abs, nil
	}

	switch word(p.token()) {
	case kwNext:
		p.next()
		unit, err := p.parseRelativeTimeUnit()
		if err != nil {
			return nil, err
		}
		return core.Next{Unit: unit}, nil
	case kwLast:
		p.next()
		unit, err := p.parseRelativeTimeUnit()
		if err != nil {
			return nil, err
		}
		return core.Last{Unit: unit}, nil
	}

	n, err := p.parseNamedRelativeTime()
	if err != nil {
		return nil, err
	}
	return n, nil
}
