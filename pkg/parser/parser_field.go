package parser

import (
	"strconv"

	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// ---------- Numeric fields ----------

func (p *Parser) parseNumber() (core.Number, error) {
	tok, err := p.expect(token.NUMBER, expectedNumber)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil {
		return 0, outOfRange(tok, ErrNumberTooLarge, tok.Literal)
	}
	return core.Number(v), nil
}

// parseBounded consumes a NUMBER within [lo, hi]. The error names field.
func (p *Parser) parseBounded(field string, lo, hi uint64) (uint64, error) {
	tok, err := p.expect(token.NUMBER, expectedNumber)
	if err != nil {
		return 0, err
	}
	return bounded(tok, field, lo, hi)
}

func bounded(tok token.Token, field string, lo, hi uint64) (uint64, error) {
	v, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil || v < lo || v > hi {
		return 0, outOfRange(tok, ErrFieldRange, field, lo, hi)
	}
	return v, nil
}

func (p *Parser) parseDayOfMonth() (core.DayOfMonth, error) {
	v, err := p.parseBounded("day", core.MinDayOfMonth, core.MaxDayOfMonth)
	return core.DayOfMonth(v), err
}

func (p *Parser) parseMonth() (core.Month, error) {
	v, err := p.parseBounded("month", core.MinMonth, core.MaxMonth)
	return core.Month(v), err
}

func (p *Parser) parseYear() (core.Year, error) {
	v, err := p.parseBounded("year", 0, core.MaxYear)
	return core.Year(v), err
}

func (p *Parser) parseMinute() (core.Minute, error) {
	v, err := p.parseBounded("minute", 0, core.MaxMinute)
	return core.Minute(v), err
}

// parseHour parses a standalone hour. A following AM/PM makes it a 12-hour
// value; otherwise it is read on the 24-hour clock.
func (p *Parser) parseHour() (core.Hour, error) {
	tok, err := p.expect(token.NUMBER, expectedNumber)
	if err != nil {
		return core.Hour{}, err
	}
	if !p.checkMeridiem() {
		return hour24(tok)
	}
	m, err := p.parseAmPm()
	if err != nil {
		return core.Hour{}, err
	}
	return hour12(tok, m)
}

func hour12(tok token.Token, m core.AmPm) (core.Hour, error) {
	v, err := bounded(tok, "hour", core.MinHour12, core.MaxHour12)
	if err != nil {
		return core.Hour{}, err
	}
	return core.Hour12(uint8(v), m), nil
}

func hour24(tok token.Token) (core.Hour, error) {
	v, err := bounded(tok, "hour", 0, core.MaxHour24)
	if err != nil {
		return core.Hour{}, err
	}
	return core.Hour24(uint8(v)), nil
}

// ---------- Word fields ----------

// checkMeridiem reports whether the current token is AM or PM without
// consuming it.
func (p *Parser) checkMeridiem() bool {
	_, ok := meridiemWords[word(p.token())]
	return ok
}

func (p *Parser) parseAmPm() (core.AmPm, error) {
	tok := p.token()
	m, ok := meridiemWords[word(tok)]
	if !ok {
		return 0, mismatch(tok, expectedMeridiem)
	}
	p.next()
	return m, nil
}

func (p *Parser) parseTimeUnit() (core.TimeUnit, error) {
	tok := p.token()
	u, ok := timeUnitWords[word(tok)]
	if !ok {
		return 0, mismatch(tok, expectedTimeUnit)
	}
	p.next()
	return u, nil
}

func (p *Parser) parseRelativeTimeUnit() (core.RelativeTimeUnit, error) {
	tok := p.token()
	u, ok := relativeUnitWords[word(tok)]
	if !ok {
		return 0, mismatch(tok, expectedRelativeUnit)
	}
	p.next()
	return u, nil
}
