package parser

import (
	"fmt"

	"github.com/leapstack-labs/timelang/pkg/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// TokenMismatch means a different token or keyword was required.
	TokenMismatch ErrorKind = iota
	// RangeViolation means a well-formed number fell outside its field's bounds.
	RangeViolation
)

func (k ErrorKind) String() string {
	switch k {
	case TokenMismatch:
		return "token mismatch"
	case RangeViolation:
		return "range violation"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken   = "unexpected token %s, expected %s"
	ErrFieldRange        = "%s must be between %d and %d (inclusive)"
	ErrNumberTooLarge    = "number %s is too large"
	ErrDurationOverflow  = "total %s overflows"
	ErrUnknownRule       = "unknown rule %q"
	expectedNumber       = "[number]"
	expectedEnd          = "end of input"
	expectedExpression   = "[number] or [keyword]"
	expectedDuration     = "[number] followed by one of `minutes`, `hours`, `days`, `weeks`, `months`, `years`"
	expectedTimeUnit     = "one of `minutes`, `hours`, `days`, `weeks`, `months`, `years`"
	expectedRelativeUnit = "one of `week`, `month`, `year`, `monday`, `tuesday`, `wednesday`, `thursday`, `friday`, `saturday`, `sunday`"
	expectedNamed        = "one of `day`, `now`, `today`, `tomorrow`, `yesterday`, `the`"
	expectedAfterBefore  = "`before` or `after`"
	expectedDirection    = "one of `after`, `before`, `ago`, `from`"
	expectedMeridiem     = "`AM` or `PM`"
)

func mismatch(tok token.Token, want string) *ParseError {
	return &ParseError{
		Pos:     tok.Pos,
		Kind:    TokenMismatch,
		Message: fmt.Sprintf(ErrUnexpectedToken, tok.Describe(), want),
	}
}

func outOfRange(tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     tok.Pos,
		Kind:    RangeViolation,
		Message: fmt.Sprintf(format, args...),
	}
}
