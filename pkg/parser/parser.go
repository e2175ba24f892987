// Package parser implements the recursive-descent parser for timelang
// expressions.
//
// Every production has a public Parse function that requires the whole
// input to be consumed. Ambiguous prefixes are resolved by forking the
// parser, trying one production on the fork, and committing the fork's
// position only if it succeeded.
package parser

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// Parser is a cursor over a token slice. Copying a Parser forks it.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser creates a parser over the tokens of input.
func NewParser(input string) *Parser {
	return &Parser{tokens: Tokenize(input)}
}

// Parse parses a complete TimeExpression.
func Parse(input string) (core.TimeExpression, error) {
	return parseAll(input, (*Parser).parseTimeExpression)
}

// ParsePointInTime parses an absolute or relative point in time.
func ParsePointInTime(input string) (core.PointInTime, error) {
	return parseAll(input, (*Parser).parsePointInTime)
}

// ParseTimeRange parses "from A to B".
func ParseTimeRange(input string) (core.TimeRange, error) {
	return parseAll(input, (*Parser).parseTimeRange)
}

// ParseDuration parses a list of (number, unit) pairs.
func ParseDuration(input string) (core.Duration, error) {
	return parseAll(input, (*Parser).parseDuration)
}

// ParseAbsoluteTime parses a Date or DateTime.
func ParseAbsoluteTime(input string) (core.AbsoluteTime, error) {
	return parseAll(input, (*Parser).parseAbsoluteTime)
}

// ParseRelativeTime parses a Directional, named, next or last expression.
func ParseRelativeTime(input string) (core.RelativeTime, error) {
	return parseAll(input, (*Parser).parseRelativeTime)
}

// ParseDate parses d/m/yyyy.
func ParseDate(input string) (core.Date, error) {
	return parseAll(input, (*Parser).parseDate)
}

// ParseTime parses H:MM with an optional AM/PM.
func ParseTime(input string) (core.Time, error) {
	return parseAll(input, (*Parser).parseTime)
}

// ParseDateTime parses a date, an optional "at", and a time.
func ParseDateTime(input string) (core.DateTime, error) {
	return parseAll(input, (*Parser).parseDateTime)
}

// ParseTimeDirection parses "ago", "from now", or "after"/"before" an anchor.
func ParseTimeDirection(input string) (core.TimeDirection, error) {
	return parseAll(input, (*Parser).parseTimeDirection)
}

// ParseNamedRelativeTime parses an idiom such as "the day after tomorrow".
func ParseNamedRelativeTime(input string) (core.NamedRelativeTime, error) {
	return parseAll(input, (*Parser).parseNamedRelativeTime)
}

// ParseRelativeTimeUnit parses week, month, year or a weekday.
func ParseRelativeTimeUnit(input string) (core.RelativeTimeUnit, error) {
	return parseAll(input, (*Parser).parseRelativeTimeUnit)
}

// ParseTimeUnit parses a duration unit or one of its synonyms.
func ParseTimeUnit(input string) (core.TimeUnit, error) {
	return parseAll(input, (*Parser).parseTimeUnit)
}

// ParseHour parses a standalone hour, "17" or "5 PM".
func ParseHour(input string) (core.Hour, error) {
	return parseAll(input, (*Parser).parseHour)
}

// ParseMinute parses a minute, 0 to 60.
func ParseMinute(input string) (core.Minute, error) {
	return parseAll(input, (*Parser).parseMinute)
}

// ParseMonth parses a numeric month, 1 to 12.
func ParseMonth(input string) (core.Month, error) {
	return parseAll(input, (*Parser).parseMonth)
}

// ParseDayOfMonth parses a day of the month, 1 to 31, without checking it
// against any month.
func ParseDayOfMonth(input string) (core.DayOfMonth, error) {
	return parseAll(input, (*Parser).parseDayOfMonth)
}

// ParseYear parses a year, 0 to 65535. Two-digit years are not expanded.
func ParseYear(input string) (core.Year, error) {
	return parseAll(input, (*Parser).parseYear)
}

// ParseNumber parses an unsigned decimal count.
func ParseNumber(input string) (core.Number, error) {
	return parseAll(input, (*Parser).parseNumber)
}

// ParseAmPm parses a meridiem marker: AM or PM in any case.
func ParseAmPm(input string) (core.AmPm, error) {
	return parseAll(input, (*Parser).parseAmPm)
}

// rules maps rule names to their entry points for ParseAs.
var rules = map[string]func(string) (core.Node, error){
	"expression": nodeRule(Parse),
	"point":      nodeRule(ParsePointInTime),
	"range":      nodeRule(ParseTimeRange),
	"duration":   nodeRule(ParseDuration),
	"absolute":   nodeRule(ParseAbsoluteTime),
	"relative":   nodeRule(ParseRelativeTime),
	"date":       nodeRule(ParseDate),
	"time":       nodeRule(ParseTime),
	"datetime":   nodeRule(ParseDateTime),
	"direction":  nodeRule(ParseTimeDirection),
	"named":      nodeRule(ParseNamedRelativeTime),
	"unit":       nodeRule(ParseRelativeTimeUnit),
	"timeunit":   nodeRule(ParseTimeUnit),
	"hour":       nodeRule(ParseHour),
	"minute":     nodeRule(ParseMinute),
	"month":      nodeRule(ParseMonth),
	"day":        nodeRule(ParseDayOfMonth),
	"year":       nodeRule(ParseYear),
	"number":     nodeRule(ParseNumber),
	"ampm":       nodeRule(ParseAmPm),
}

// DefaultRule is the rule ParseAs uses for an empty name.
const DefaultRule = "expression"

// ParseAs parses input with the named rule. An empty name means
// DefaultRule. Unknown names fail with a plain error, not a ParseError.
func ParseAs(rule, input string) (core.Node, error) {
	if rule == "" {
		rule = DefaultRule
	}
	fn, ok := rules[rule]
	if !ok {
		return nil, &UnknownRuleError{Rule: rule}
	}
	return fn(input)
}

// Rules returns the rule names ParseAs accepts, sorted.
func Rules() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// examples holds one sample input per rule.
var examples = map[string]string{
	"expression": "from yesterday to next week",
	"point":      "3 days ago",
	"range":      "from 1/1/2024 to 31/1/2024",
	"duration":   "1 hour and 30 minutes",
	"absolute":   "20/4/2021 at 5:09 PM",
	"relative":   "2 days before next Friday",
	"date":       "20/4/2021",
	"time":       "5:09 PM",
	"datetime":   "20/4/2021 at 17:09",
	"direction":  "after tomorrow",
	"named":      "the day before yesterday",
	"unit":       "Monday",
	"timeunit":   "weeks",
	"hour":       "5 PM",
	"minute":     "09",
	"month":      "12",
	"day":        "31",
	"year":       "2024",
	"number":     "42",
	"ampm":       "pm",
}

// Example returns a sample input the named rule accepts, or "" for an
// unknown rule.
func Example(rule string) string {
	return examples[rule]
}

// UnknownRuleError is returned by ParseAs for a rule name it does not know.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf(ErrUnknownRule, e.Rule)
}

func nodeRule[T core.Node](fn func(string) (T, error)) func(string) (core.Node, error) {
	return func(input string) (core.Node, error) {
		v, err := fn(input)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// parseAll runs rule over the whole of input.
func parseAll[T any](input string, rule func(*Parser) (T, error)) (T, error) {
	var zero T
	p := NewParser(input)
	v, err := rule(p)
	if err != nil {
		return zero, err
	}
	if !p.check(token.EOF) {
		return zero, mismatch(p.token(), expectedEnd)
	}
	return v, nil
}
