package core

// Date is a day/month/year triple. Fields are declared month first, which
// is also the order Compare uses; the surface syntax is d/m/yyyy.
type Date struct {
	Month Month
	Day   DayOfMonth
	Year  Year
}

func (Date) node()         {}
func (Date) pointInTime()  {}
func (Date) absoluteTime() {}
func (Date) anchor()       {}

// Time is a time of day at minute resolution.
type Time struct {
	Hour   Hour
	Minute Minute
}

func (Time) node() {}

// DateTime is a Date with a Time.
type DateTime struct {
	Date Date
	Time Time
}

func (DateTime) node()         {}
func (DateTime) pointInTime()  {}
func (DateTime) absoluteTime() {}
func (DateTime) anchor()       {}
