package commands

import (
	"testing"

	clitestutil "github.com/leapstack-labs/timelang/internal/cli/testutil"
	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*replSession, *clitestutil.TestRenderer) {
	t.Helper()
	logger := testutil.NewTestLogger(t)
	eng, err := engine.New(engine.Config{Logger: logger})
	require.NoError(t, err)

	tr := clitestutil.NewTestRendererText()
	return &replSession{ctx: &CommandContext{
		Cfg:      getConfig(),
		Logger:   logger,
		Engine:   eng,
		Renderer: tr.Renderer,
	}}, tr
}

func TestREPL_Evaluate(t *testing.T) {
	s, tr := newTestSession(t)

	assert.False(t, s.handle("  last MONDAY  "))
	assert.Equal(t, "last Monday (point, Specific)\n", clitestutil.StripANSI(tr.Output()))

	tr.Reset()
	assert.False(t, s.handle(""))
	assert.Empty(t, tr.Output())
}

func TestREPL_Error(t *testing.T) {
	s, tr := newTestSession(t)

	assert.False(t, s.handle("12/13/2020"))
	assert.Empty(t, tr.Output())
	assert.Contains(t, tr.ErrorOutput(), "<input>:1:4: month must be between 1 and 12 (inclusive)")
	clitestutil.AssertCaret(t, tr.ErrorOutput(), 4)
}

func TestREPL_DotCommands(t *testing.T) {
	s, tr := newTestSession(t)

	s.handle(".help")
	assert.Contains(t, tr.Output(), ".tokens <expr>")

	tr.Reset()
	s.handle(".tokens 5 pm")
	assert.Equal(t, "1:1\tNUMBER\t\"5\"\n1:3\tIDENT\t\"pm\"\n1:5\tEOF\t\"\"\n", tr.Output())

	tr.Reset()
	s.handle(".ast tomorrow")
	assert.Contains(t, tr.Output(), "Specific \"tomorrow\"\n")

	tr.Reset()
	s.handle(".as")
	assert.Equal(t, "rule: expression\n", tr.Output())

	tr.Reset()
	s.handle(".as time")
	assert.Equal(t, "rule: time\n", tr.Output())
	assert.Equal(t, "time", s.ctx.Engine.Rule())

	tr.Reset()
	s.handle("9:05 am")
	assert.Equal(t, "9:05 AM (Time)\n", clitestutil.StripANSI(tr.Output()))

	tr.Reset()
	s.handle(".as nope")
	assert.Contains(t, tr.ErrorOutput(), `unknown rule "nope"`)
	assert.Equal(t, "time", s.ctx.Engine.Rule())

	tr.Reset()
	s.handle(".bogus")
	assert.Contains(t, tr.ErrorOutput(), "unknown command .bogus")
}

func TestREPL_Quit(t *testing.T) {
	s, _ := newTestSession(t)
	assert.True(t, s.handle(".quit"))
	assert.True(t, s.handle(".EXIT"))
}
