package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/timelang/pkg/format"
)

// LineError reports a parse failure inside a document. Result holds the
// failed evaluation with positions relative to the document.
type LineError struct {
	Line   int
	Result Result
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Result.Err)
}

func (e *LineError) Unwrap() error {
	return e.Result.Err
}

// FormatDocument rewrites every expression line of src in canonical form.
// Comments, blank lines and leading indentation are kept as they are.
// It returns the new document and the 1-based numbers of lines that
// changed. The first line that fails to parse aborts with a *LineError.
func (e *Engine) FormatDocument(ctx context.Context, src string) (string, []int, error) {
	lines, err := ReadLines(strings.NewReader(src))
	if err != nil {
		return "", nil, err
	}
	results, err := e.evaluateLines(ctx, lines)
	if err != nil {
		return "", nil, err
	}

	out := strings.Split(src, "\n")
	var changed []int
	for _, res := range results {
		if res.Err != nil {
			return "", nil, &LineError{Line: res.Line, Result: res}
		}
		idx := res.Line - 1
		original, crlf := strings.CutSuffix(out[idx], "\r")
		indent := original[:len(original)-len(strings.TrimLeft(original, " \t"))]
		formatted := indent + format.Format(res.Node)
		if formatted != original {
			if crlf {
				formatted += "\r"
			}
			out[idx] = formatted
			changed = append(changed, res.Line)
		}
	}
	return strings.Join(out, "\n"), changed, nil
}
