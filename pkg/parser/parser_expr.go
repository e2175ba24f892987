package parser

import (
	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// parseTimeExpression chooses among TimeRange, Specific and Duration.
//
// Order matters: a Duration is a prefix of a Directional point ("3 days"
// vs "3 days ago"), so the point is tried on a fork first and Duration is
// the fallback whose error is reported.
func (p *Parser) parseTimeExpression() (core.TimeExpression, error) {
	tok := p.token()
	if tok.Type != token.IDENT && tok.Type != token.NUMBER {
		return nil, mismatch(tok, expectedExpression)
	}

	if isWord(tok, kwFrom) {
		r, err := p.parseTimeRange()
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	if p.check(token.NUMBER) && p.checkPeek(token.SLASH) {
		abs, err := p.parseAbsoluteTime()
		if err != nil {
			return nil, err
		}
		return core.Specific{Point: abs}, nil
	}

	f := p.fork()
	if point, err := f.parsePointInTime(); err == nil {
		p.commit(f)
		return core.Specific{Point: point}, nil
	}

	d, err := p.parseDuration()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// parsePointInTime parses an AbsoluteTime when the input starts with
// NUMBER '/', otherwise a RelativeTime.
func (p *Parser) parsePointInTime() (core.PointInTime, error) {
	if p.check(token.NUMBER) && p.checkPeek(token.SLASH) {
		abs, err := p.parseAbsoluteTime()
		if err != nil {
			return nil, err
		}
		return abs, nil
	}
	rel, err := p.parseRelativeTime()
	if err != nil {
		return nil, err
	}
	return rel, nil
}

// parseTimeRange parses "from" PointInTime "to" PointInTime.
func (p *Parser) parseTimeRange() (core.TimeRange, error) {
	if _, err := p.expectWord(kwFrom); err != nil {
		return core.TimeRange{}, err
	}
	start, err := p.parsePointInTime()
	if err != nil {
		return core.TimeRange{}, err
	}
	if _, err := p.expectWord(kwTo); err != nil {
		return core.TimeRange{}, err
	}
	end, err := p.parsePointInTime()
	if err != nil {
		return core.TimeRange{}, err
	}
	return core.TimeRange{Start: start, End: end}, nil
}
