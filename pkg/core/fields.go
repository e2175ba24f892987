package core

// Field bounds. Minute and the 24-hour clock both accept one past the
// conventional maximum (60 and 24).
const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
	MinMonth      = 1
	MaxMonth      = 12
	MaxYear       = 65535
	MaxMinute     = 60
	MinHour12     = 1
	MaxHour12     = 12
	MaxHour24     = 24
)

// DayOfMonth is a day number, 1 through 31. It is not checked against the
// month.
type DayOfMonth uint8

func (DayOfMonth) node() {}

// Year is any value representable in 16 bits.
type Year uint16

func (Year) node() {}

// Minute is 0 through 60.
type Minute uint8

func (Minute) node() {}

// Month is a calendar month, January (1) through December (12).
type Month uint8

// Months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (Month) node() {}

var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// String returns the English month name.
func (m Month) String() string {
	if m >= January && m <= December {
		return monthNames[m]
	}
	return "Month(?)"
}

// AmPm is the meridiem of a 12-hour clock value.
type AmPm uint8

// Meridiem values.
const (
	AM AmPm = iota
	PM
)

func (AmPm) node() {}

func (a AmPm) String() string {
	if a == PM {
		return "PM"
	}
	return "AM"
}

// Clock tells whether an Hour was written on the 12-hour or 24-hour clock.
type Clock uint8

// Clock formats, in declaration order.
const (
	Clock12 Clock = iota
	Clock24
)

// Hour is an hour of the day. On Clock12 Value is 1..12 and Meridiem is
// meaningful; on Clock24 Value is 0..24 and Meridiem is always AM.
type Hour struct {
	Value    uint8
	Clock    Clock
	Meridiem AmPm
}

func (Hour) node() {}

// Hour12 returns a 12-hour clock value such as 5 PM.
func Hour12(v uint8, m AmPm) Hour {
	return Hour{Value: v, Clock: Clock12, Meridiem: m}
}

// Hour24 returns a 24-hour clock value such as 17.
func Hour24(v uint8) Hour {
	return Hour{Value: v, Clock: Clock24}
}

// TimeUnit is a Duration component.
type TimeUnit uint8

// Time units, smallest first.
const (
	Minutes TimeUnit = iota
	Hours
	Days
	Weeks
	Months
	Years
)

// TimeUnits lists every unit in declaration order.
var TimeUnits = [...]TimeUnit{Minutes, Hours, Days, Weeks, Months, Years}

func (TimeUnit) node() {}

var timeUnitNames = [...]string{"minutes", "hours", "days", "weeks", "months", "years"}

// String returns the plural unit name.
func (u TimeUnit) String() string {
	if int(u) < len(timeUnitNames) {
		return timeUnitNames[u]
	}
	return "unit(?)"
}

// Singular returns the unit name used with a count of one.
func (u TimeUnit) Singular() string {
	s := u.String()
	return s[:len(s)-1]
}

// RelativeTimeUnit is what "next" and "last" may be applied to.
type RelativeTimeUnit uint8

// Relative time units, in declaration order.
const (
	WeekUnit RelativeTimeUnit = iota
	MonthUnit
	YearUnit
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (RelativeTimeUnit) node() {}

var relativeUnitNames = [...]string{
	"week", "month", "year",
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the canonical spelling: lower-case periods, capitalized
// weekdays.
func (u RelativeTimeUnit) String() string {
	if int(u) < len(relativeUnitNames) {
		return relativeUnitNames[u]
	}
	return "unit(?)"
}

// NamedRelativeTime is a single idiom such as "tomorrow".
type NamedRelativeTime uint8

// Named relative times, in declaration order.
const (
	Now NamedRelativeTime = iota
	Today
	Tomorrow
	Yesterday
	DayAfterTomorrow
	DayBeforeYesterday
)

func (NamedRelativeTime) node()         {}
func (NamedRelativeTime) pointInTime()  {}
func (NamedRelativeTime) relativeTime() {}
func (NamedRelativeTime) anchor()       {}

var namedNames = [...]string{
	"now", "today", "tomorrow", "yesterday",
	"the day after tomorrow", "the day before yesterday",
}

// String returns the canonical phrase. The three-word idioms always carry
// their leading "the".
func (n NamedRelativeTime) String() string {
	if int(n) < len(namedNames) {
		return namedNames[n]
	}
	return "named(?)"
}
