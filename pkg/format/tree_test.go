package format_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/timelang/pkg/core"
	"github.com/leapstack-labs/timelang/pkg/format"
)

func TestDescribe(t *testing.T) {
	expr := core.Specific{Point: core.Directional{
		Duration:  core.Duration{Days: 3},
		Direction: core.Ago(),
	}}

	tree := format.Describe(expr)
	assert.Equal(t, "Specific", tree.Node)
	assert.Equal(t, "3 days ago", tree.Text)
	require.Len(t, tree.Children, 1)

	point := tree.Children[0]
	assert.Equal(t, "Point", point.Field)
	assert.Equal(t, "Directional", point.Node)
	require.Len(t, point.Children, 2)
	assert.Equal(t, "Ago", point.Children[1].Node)

	expected := `Specific "3 days ago"
  Point: Directional "3 days ago"
    Duration: Duration "3 days"
      Days: Number "3"
    Direction: Ago "ago"
`
	assert.Equal(t, expected, tree.Dump())
}

func TestDescribeDirections(t *testing.T) {
	date := core.Date{Month: core.May, Day: 1, Year: 2024}
	tests := map[string]core.TimeDirection{
		"AfterAbsolute":  core.AfterAbsolute(date),
		"BeforeAbsolute": core.BeforeAbsolute(core.DateTime{Date: date}),
		"AfterNamed":     core.AfterNamed(core.Today),
		"BeforeNamed":    core.BeforeNamed(core.Today),
		"AfterNext":      core.AfterNext(core.Monday),
		"BeforeNext":     core.BeforeNext(core.Monday),
		"AfterLast":      core.AfterLast(core.Monday),
		"BeforeLast":     core.BeforeLast(core.Monday),
		"Ago":            core.Ago(),
		"FromNow":        core.FromNow(),
	}
	for want, dir := range tests {
		assert.Equal(t, want, format.NodeName(dir))
	}
}

func TestDescribeJSON(t *testing.T) {
	tree := format.Describe(core.Date{Month: core.January, Day: 2, Year: 2023})
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"node": "Date",
		"text": "2/1/2023",
		"children": [
			{"field": "Month", "node": "Month", "text": "1"},
			{"field": "Day", "node": "DayOfMonth", "text": "2"},
			{"field": "Year", "node": "Year", "text": "2023"}
		]
	}`, string(data))
}
