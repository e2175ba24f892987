package parser

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/token"
)

// Keywords are plain identifiers matched case-insensitively. None of them
// is reserved: "day" is a TimeUnit in "3 day ago" and an idiom word in
// "the day after tomorrow".
const (
	kwAt        = "at"
	kwAnd       = "and"
	kwFrom      = "from"
	kwTo        = "to"
	kwNext      = "next"
	kwLast      = "last"
	kwThe       = "the"
	kwDay       = "day"
	kwAfter     = "after"
	kwBefore    = "before"
	kwAgo       = "ago"
	kwNow       = "now"
	kwTomorrow  = "tomorrow"
	kwYesterday = "yesterday"
)

var timeUnitWords = map[string]core.TimeUnit{
	"mins":    core.Minutes,
	"minutes": core.Minutes,
	"minute":  core.Minutes,
	"min":     core.Minutes,
	"hours":   core.Hours,
	"hrs":     core.Hours,
	"hour":    core.Hours,
	"hr":      core.Hours,
	"days":    core.Days,
	"day":     core.Days,
	"weeks":   core.Weeks,
	"week":    core.Weeks,
	"months":  core.Months,
	"month":   core.Months,
	"years":   core.Years,
	"yr":      core.Years,
	"year":    core.Years,
}

var relativeUnitWords = map[string]core.RelativeTimeUnit{
	"week":      core.WeekUnit,
	"month":     core.MonthUnit,
	"year":      core.YearUnit,
	"monday":    core.Monday,
	"tuesday":   core.Tuesday,
	"wednesday": core.Wednesday,
	"thursday":  core.Thursday,
	"friday":    core.Friday,
	"saturday":  core.Saturday,
	"sunday":    core.Sunday,
}

// namedWords are the single-word NamedRelativeTime idioms.
var namedWords = map[string]core.NamedRelativeTime{
	"now":       core.Now,
	"today":     core.Today,
	"tomorrow":  core.Tomorrow,
	"yesterday": core.Yesterday,
}

// namedLeadWords start a NamedRelativeTime inside a RelativeTime.
var namedLeadWords = map[string]bool{
	kwDay:       true,
	kwNow:       true,
	"today":     true,
	kwTomorrow:  true,
	kwYesterday: true,
	kwThe:       true,
}

var meridiemWords = map[string]core.AmPm{
	"am": core.AM,
	"pm": core.PM,
}

// fold returns the case-folded form of an identifier. A Caser carries
// state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// word returns the folded literal of an IDENT token, or "" for any other
// token type.
func word(tok token.Token) string {
	if tok.Type != token.IDENT {
		return ""
	}
	return fold(tok.Literal)
}

// isWord reports whether tok is the identifier kw, ignoring case.
func isWord(tok token.Token, kw string) bool {
	return word(tok) == kw
}

// Keyword is a word the parser recognizes, with the part of the grammar
// it belongs to.
type Keyword struct {
	Word     string `json:"word" yaml:"word"`
	Category string `json:"category" yaml:"category"`
}

// Keyword categories, in the order Keywords assigns them. A word listed in
// several tables keeps the first category.
const (
	CategoryTimeUnit     = "time unit"
	CategoryRelativeUnit = "relative unit"
	CategoryNamed        = "named"
	CategoryMeridiem     = "meridiem"
	CategoryKeyword      = "keyword"
)

// Keywords returns every word the parser recognizes, sorted.
func Keywords() []Keyword {
	seen := make(map[string]bool)
	var out []Keyword
	add := func(category string, words []string) {
		for _, w := range words {
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, Keyword{Word: w, Category: category})
		}
	}
	add(CategoryTimeUnit, mapKeys(timeUnitWords))
	add(CategoryRelativeUnit, mapKeys(relativeUnitWords))
	add(CategoryNamed, mapKeys(namedWords))
	add(CategoryMeridiem, mapKeys(meridiemWords))
	add(CategoryKeyword, []string{kwAt, kwAnd, kwFrom, kwTo, kwNext, kwLast, kwThe, kwAfter, kwBefore, kwAgo})
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
