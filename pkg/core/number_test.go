package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/timelang/pkg/core"
)

func TestNumberArithmetic(t *testing.T) {
	assert.Equal(t, core.Number(5), core.Number(2).Add(3))
	assert.Equal(t, core.Number(0), core.Number(2).Sub(3))
	assert.Equal(t, core.Number(1), core.Number(4).Sub(3))
	assert.Equal(t, core.Number(12), core.Number(4).Mul(3))
	assert.Equal(t, core.Number(3), core.Number(10).Div(3))
	assert.Equal(t, uint64(7), core.Number(7).Uint64())
}

func TestNumberCheckedAdd(t *testing.T) {
	sum, ok := core.Number(40).CheckedAdd(2)
	assert.True(t, ok)
	assert.Equal(t, core.Number(42), sum)

	_, ok = core.Number(math.MaxUint64).CheckedAdd(1)
	assert.False(t, ok)

	sum, ok = core.Number(math.MaxUint64).CheckedAdd(0)
	assert.True(t, ok)
	assert.Equal(t, core.Number(math.MaxUint64), sum)
}
