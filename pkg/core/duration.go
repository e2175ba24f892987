package core

// Duration is a magnitude per TimeUnit. A component that was never written
// and one written as zero are the same value.
type Duration struct {
	Minutes Number
	Hours   Number
	Days    Number
	Weeks   Number
	Months  Number
	Years   Number
}

func (Duration) node()           {}
func (Duration) timeExpression() {}

// Get returns the component for u.
func (d Duration) Get(u TimeUnit) Number {
	switch u {
	case Minutes:
		return d.Minutes
	case Hours:
		return d.Hours
	case Days:
		return d.Days
	case Weeks:
		return d.Weeks
	case Months:
		return d.Months
	case Years:
		return d.Years
	}
	return 0
}

// With returns a copy of d with the component for u set to n.
func (d Duration) With(u TimeUnit, n Number) Duration {
	switch u {
	case Minutes:
		d.Minutes = n
	case Hours:
		d.Hours = n
	case Days:
		d.Days = n
	case Weeks:
		d.Weeks = n
	case Months:
		d.Months = n
	case Years:
		d.Years = n
	}
	return d
}

// Add sums two durations component-wise.
func (d Duration) Add(o Duration) Duration {
	for _, u := range TimeUnits {
		d = d.With(u, d.Get(u).Add(o.Get(u)))
	}
	return d
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}
