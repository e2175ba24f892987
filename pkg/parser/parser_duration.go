package parser

import (
	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// parseDuration accumulates (Number, TimeUnit) pairs. A repeated unit adds
// to the running total. Pairs may be separated by a comma, "and", both, or
// nothing.
func (p *Parser) parseDuration() (core.Duration, error) {
	var d core.Duration
	pairs := 0

	for p.check(token.NUMBER) {
		numTok := p.token()
		n, err := p.parseNumber()
		if err != nil {
			return core.Duration{}, err
		}
		unit, err := p.parseTimeUnit()
		if err != nil {
			return core.Duration{}, err
		}

		sum, ok := d.Get(unit).CheckedAdd(n)
		if !ok {
			return core.Duration{}, outOfRange(numTok, ErrDurationOverflow, unit)
		}
		d = d.With(unit, sum)
		pairs++

		p.match(token.COMMA)
		if p.checkWord(kwAnd) {
			p.next()
		}
	}

	if pairs == 0 {
		return core.Duration{}, mismatch(p.token(), expectedDuration)
	}
	return d, nil
}
