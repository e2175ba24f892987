package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/timelang/pkg/parser"
)

// requireParseError asserts err is a *parser.ParseError of the given kind
// and returns it.
func requireParseError(t *testing.T, err error, kind parser.ErrorKind) *parser.ParseError {
	t.Helper()
	require.Error(t, err)
	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe), "expected *parser.ParseError, got %T", err)
	require.Equal(t, kind, pe.Kind, "message: %s", pe.Message)
	return pe
}
