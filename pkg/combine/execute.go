// File: pkg/combine/execute.go
package combine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"dirclip/pkg/clipboard"
	"dirclip/pkg/selector"

	"go.uber.org/zap"
)

// Streams are where the snapshot and the run summary are printed.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// RunCombine orchestrates one run: select, build, deliver, summarize.
// Configuration errors abort before traversal; per-file read errors only
// shrink the snapshot; a clipboard failure is returned as is.
func RunCombine(ctx context.Context, args Arguments, streams Streams, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if streams.Stdout == nil {
		streams.Stdout = os.Stdout
	}
	if streams.Stderr == nil {
		streams.Stderr = os.Stderr
	}

	startTime := time.Now()
	logger.Debug("Starting combine process", zap.String("baseDir", args.Selector.BaseDir))

	sel, err := selector.New(logger).Select(args.Selector)
	if err != nil {
		return fmt.Errorf("failed to select files: %w", err)
	}

	// With stdout as the destination the summary must not mix with the snapshot.
	summary := streams.Stdout
	if args.Output == OutputStdout {
		summary = streams.Stderr
	}

	if sel.Empty() {
		logger.Warn("No files to process after filtering.", zap.String("baseDir", sel.BaseDir))
		fmt.Fprintln(summary, emptyMessage(args.Output))
		return nil
	}

	result := Build(sel, BuildOptions{Tree: args.Tree, MaxFileSizeKB: args.MaxFileSizeKB}, logger)

	clip := args.Clipboard
	if clip == nil {
		clip = clipboard.New(args.X11)
	}
	if err := Deliver(ctx, result.Text, args.Output, clip, streams.Stdout, logger); err != nil {
		return err
	}

	printSummary(summary, args, result)
	logger.Debug("Combination process completed",
		zap.Int("files", result.Files),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// emptyMessage reports an empty selection; the destination is left untouched.
func emptyMessage(output string) string {
	switch output {
	case OutputClipboard:
		return "No matching files found; nothing was copied."
	case OutputStdout:
		return "No matching files found; nothing was written."
	default:
		return fmt.Sprintf("No matching files found; %s was not written.", output)
	}
}

func printSummary(w io.Writer, args Arguments, result *Result) {
	switch args.Output {
	case OutputClipboard:
		fmt.Fprintln(w, "Directory contents and file contents have been copied to clipboard!")
	case OutputStdout:
		fmt.Fprintln(w, "Directory contents and file contents have been written to stdout.")
	default:
		fmt.Fprintf(w, "Directory contents and file contents have been written to %s\n", args.Output)
	}

	if args.Selector.Filter != "" {
		fmt.Fprintf(w, "Filtered files using pattern: %s\n", args.Selector.Filter)
	}
	if args.Selector.Recursive {
		fmt.Fprintln(w, "Processed subdirectories recursively (showing only directories with matching files)")
	}
	if n := len(result.Skipped); n > 0 {
		fmt.Fprintf(w, "Skipped %d file(s) that could not be read as text\n", n)
	}
}
