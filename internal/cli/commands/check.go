package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/timelang/internal/cli/output"
	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of write events from editors.
const watchDebounce = 100 * time.Millisecond

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch bool
}

// fileReport is the structured result for one checked file.
type fileReport struct {
	File    string          `json:"file" yaml:"file"`
	Results []engine.Result `json:"results" yaml:"results"`
	Summary engine.Summary  `json:"summary" yaml:"summary"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate files of expressions",
		Long: `Validate every expression line of the given files and report errors
with their line and column. Blank lines and '#' comments are skipped.
With no files, stdin is checked.

Lines are parsed concurrently; set --workers to bound the pool.
With --watch, files are re-checked whenever they change.`,
		Example: `  timelang check deadlines.tl
  timelang check --as duration timeouts.tl
  timelang check -o json *.tl
  timelang check --watch deadlines.tl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().String("as", "", "Grammar rule every line must match")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-check files when they change")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if opts.Watch {
			return errors.New("--watch needs at least one file")
		}
		results, err := cmdCtx.Engine.EvaluateReader(cmd.Context(), cmd.InOrStdin())
		if err != nil {
			return err
		}
		return reportCheck(cmdCtx.Renderer, []fileReport{newFileReport("<stdin>", results)})
	}

	err = checkFiles(cmd.Context(), cmdCtx, args)
	if !opts.Watch {
		return err
	}
	if err != nil && !errors.Is(err, ErrInvalid) {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFiles(ctx, cmdCtx, args)
}

func checkFiles(ctx context.Context, cmdCtx *CommandContext, paths []string) error {
	reports := make([]fileReport, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path) //nolint:gosec // user-supplied path is the point
		if err != nil {
			return err
		}
		results, err := cmdCtx.Engine.EvaluateReader(ctx, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		reports = append(reports, newFileReport(path, results))
	}
	return reportCheck(cmdCtx.Renderer, reports)
}

func newFileReport(file string, results []engine.Result) fileReport {
	if results == nil {
		results = []engine.Result{}
	}
	return fileReport{File: file, Results: results, Summary: engine.Summarize(results)}
}

func reportCheck(r *output.Renderer, reports []fileReport) error {
	invalid := 0
	for _, rep := range reports {
		invalid += rep.Summary.Invalid
	}

	if ok, err := r.Structured(reports); ok {
		if err != nil {
			return err
		}
		if invalid > 0 {
			return ErrInvalid
		}
		return nil
	}

	var total engine.Summary
	for _, rep := range reports {
		for _, res := range rep.Results {
			if !res.OK() {
				writeDiagnostic(r, rep.File, res)
			}
		}
		total.Total += rep.Summary.Total
		total.Valid += rep.Summary.Valid
		total.Invalid += rep.Summary.Invalid
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(1, "Check")
		r.Println(output.FormatKeyValue("Files", strconv.Itoa(len(reports))))
		r.Println(output.FormatKeyValue("Expressions", strconv.Itoa(total.Total)))
		r.Println(output.FormatKeyValue("Invalid", strconv.Itoa(total.Invalid)))
	} else if total.Invalid == 0 {
		r.Success(fmt.Sprintf("%d expression(s) in %d file(s) OK", total.Total, len(reports)))
	}

	if total.Invalid > 0 {
		return fmt.Errorf("%d of %d expression(s) invalid: %w", total.Invalid, total.Total, ErrInvalid)
	}
	return nil
}

// watchFiles re-checks paths on every write until ctx is cancelled.
func watchFiles(ctx context.Context, cmdCtx *CommandContext, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files, so watch the parent directories.
	watched := make(map[string]bool)
	targets := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	cmdCtx.Logger.Info("watching files", "count", len(paths))
	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !targets[event.Name] {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case <-rerun:
			cmdCtx.Logger.Debug("file changed, re-checking")
			if err := checkFiles(ctx, cmdCtx, paths); err != nil && !errors.Is(err, ErrInvalid) {
				cmdCtx.Renderer.Error(err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Error("watcher error", "error", err)
		}
	}
}
