package core

import "math"

// Number is a non-negative integer magnitude. It is the count in each
// Duration component.
type Number uint64

func (Number) node() {}

// Add returns n+o. It wraps on overflow; use CheckedAdd where that matters.
func (n Number) Add(o Number) Number { return n + o }

// CheckedAdd returns n+o and false if the sum overflows.
func (n Number) CheckedAdd(o Number) (Number, bool) {
	if uint64(n) > math.MaxUint64-uint64(o) {
		return 0, false
	}
	return n + o, true
}

// Sub returns n-o, saturating at zero.
func (n Number) Sub(o Number) Number {
	if o > n {
		return 0
	}
	return n - o
}

// Mul returns n*o.
func (n Number) Mul(o Number) Number { return n * o }

// Div returns n/o. It panics if o is zero, like integer division.
func (n Number) Div(o Number) Number { return n / o }

// Uint64 returns the magnitude.
func (n Number) Uint64() uint64 { return uint64(n) }
