package commands

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lspFrame(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestLSPCommand(t *testing.T) {
	stdin := lspFrame(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"rootUri":"file:///tmp"}}`) +
		lspFrame(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///tmp/a.tl","version":1,"text":"3 days soon"}}}`) +
		lspFrame(`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`) +
		lspFrame(`{"jsonrpc":"2.0","method":"exit"}`)

	out, _, err := execute(t, NewLSPCommand("1.2.3"), stdin)
	require.NoError(t, err)
	assert.Contains(t, out, `"serverInfo":{"name":"timelang","version":"1.2.3"}`)
	assert.Contains(t, out, `"method":"textDocument/publishDiagnostics"`)
	assert.Equal(t, 3, strings.Count(out, "Content-Length:"))
}
