package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/spf13/cobra"
)

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	Write bool // Rewrite files in place
	Check bool // Only report files that are not canonical
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Rewrite expression files in canonical form",
		Long: `Rewrite every expression line of the given files in canonical form.

Files hold one expression per line. Blank lines and lines starting with '#'
are kept as they are, as is leading indentation. With no files, stdin is
formatted to stdout.`,
		Example: `  # Print the formatted file
  timelang fmt deadlines.tl

  # Format in place
  timelang fmt -w deadlines.tl

  # Fail if anything would change (CI)
  timelang fmt --check *.tl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write result to the source file instead of stdout")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "List files whose formatting differs and exit non-zero")
	cmd.Flags().String("as", "", "Grammar rule every line must match")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, opts *FmtOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, changed, err := formatSource(cmd, cmdCtx, "<stdin>", string(src))
		if err != nil {
			return err
		}
		if opts.Check {
			if len(changed) > 0 {
				r.Println("<stdin>")
				return ErrInvalid
			}
			return nil
		}
		r.Printf("%s", out)
		return nil
	}

	unformatted := 0
	for _, path := range args {
		src, err := os.ReadFile(path) //nolint:gosec // user-supplied path is the point
		if err != nil {
			return err
		}
		out, changed, err := formatSource(cmd, cmdCtx, path, string(src))
		if err != nil {
			return err
		}

		switch {
		case opts.Check:
			if len(changed) > 0 {
				unformatted++
				r.Println(path)
			}
		case opts.Write:
			if len(changed) == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
				return err
			}
			cmdCtx.Logger.Info("formatted file", "path", path, "lines", len(changed))
		default:
			r.Printf("%s", out)
		}
	}

	if unformatted > 0 {
		return fmt.Errorf("%d file(s) not formatted: %w", unformatted, ErrInvalid)
	}
	return nil
}

// formatSource formats one document, writing a diagnostic for the first
// line that fails to parse.
func formatSource(cmd *cobra.Command, cmdCtx *CommandContext, name, src string) (string, []int, error) {
	out, changed, err := cmdCtx.Engine.FormatDocument(cmd.Context(), src)
	if err == nil {
		return out, changed, nil
	}

	var le *engine.LineError
	if !errors.As(err, &le) {
		return "", nil, err
	}
	writeDiagnostic(cmdCtx.Renderer, name, le.Result)
	return "", nil, ErrInvalid
}
