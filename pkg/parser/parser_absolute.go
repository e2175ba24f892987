package parser

import (
	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// parseDate parses DayOfMonth '/' Month '/' Year.
func (p *Parser) parseDate() (core.Date, error) {
	day, err := p.parseDayOfMonth()
	if err != nil {
		return core.Date{}, err
	}
	if _, err := p.expect(token.SLASH, "`/`"); err != nil {
		return core.Date{}, err
	}
	month, err := p.parseMonth()
	if err != nil {
		return core.Date{}, err
	}
	if _, err := p.expect(token.SLASH, "`/`"); err != nil {
		return core.Date{}, err
	}
	year, err := p.parseYear()
	if err != nil {
		return core.Date{}, err
	}
	return core.Date{Month: month, Day: day, Year: year}, nil
}

// parseTime parses Hour ':' Minute [AmPm]. The hour is validated only once
// the meridiem is known.
func (p *Parser) parseTime() (core.Time, error) {
	hourTok, err := p.expect(token.NUMBER, expectedNumber)
	if err != nil {
		return core.Time{}, err
	}
	if _, err := p.expect(token.COLON, "`:`"); err != nil {
		return core.Time{}, err
	}
	minute, err := p.parseMinute()
	if err != nil {
		return core.Time{}, err
	}

	if !p.checkMeridiem() {
		hour, err := hour24(hourTok)
		if err != nil {
			return core.Time{}, err
		}
		return core.Time{Hour: hour, Minute: minute}, nil
	}
	m, err := p.parseAmPm()
	if err != nil {
		return core.Time{}, err
	}
	hour, err := hour12(hourTok, m)
	if err != nil {
		return core.Time{}, err
	}
	return core.Time{Hour: hour, Minute: minute}, nil
}

// parseDateTime parses a Date, an optional "at", and a Time.
func (p *Parser) parseDateTime() (core.DateTime, error) {
	date, err := p.parseDate()
	if err != nil {
		return core.DateTime{}, err
	}
	if p.check(token.IDENT) {
		if _, err := p.expectWord(kwAt); err != nil {
			return core.DateTime{}, err
		}
	}
	t, err := p.parseTime()
	if err != nil {
		return core.DateTime{}, err
	}
	return core.DateTime{Date: date, Time: t}, nil
}

// parseAbsoluteTime tries a Date on a fork and looks past it for the start
// of a Time: NUMBER ':' NUMBER, or IDENT NUMBER ':' when a filler word such
// as "at" sits in between.
func (p *Parser) parseAbsoluteTime() (core.AbsoluteTime, error) {
	f := p.fork()
	if _, err := f.parseDate(); err != nil {
		return nil, err
	}

	timeFollows := (f.check(token.NUMBER) && f.checkPeek(token.COLON) && f.checkPeek2(token.NUMBER)) ||
		(f.check(token.IDENT) && f.checkPeek(token.NUMBER) && f.checkPeek2(token.COLON))
	if timeFollows {
		dt, err := p.parseDateTime()
		if err != nil {
			return nil, err
		}
		return dt, nil
	}

	d, err := p.parseDate()
	if err != nil {
		return nil, err
	}
	return d, nil
}
