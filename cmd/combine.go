package cmd

import (
	"dirclip/pkg/combine"
	"dirclip/pkg/selector"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCombine maps the parsed flags onto a combine run.
func runCombine(cmd *cobra.Command, opts *options, logger *zap.Logger) error {
	args := combine.Arguments{
		Selector: selector.Config{
			BaseDir:        opts.baseDir,
			Recursive:      opts.recursive,
			Filter:         opts.filter,
			IgnoreEnabled:  !opts.noIgnore,
			IgnoreFile:     opts.ignoreFile,
			GlobalExcludes: opts.globalExcludes,
			Exclude:        opts.exclude,
		},
		Output:        opts.output,
		X11:           opts.x11,
		Tree:          opts.tree,
		MaxFileSizeKB: opts.maxSizeKB,
	}

	logger.Debug("Parsed command line",
		zap.String("baseDir", opts.baseDir),
		zap.Bool("recursive", opts.recursive),
		zap.String("filter", opts.filter),
		zap.Bool("ignore", !opts.noIgnore),
		zap.String("output", opts.output))

	return combine.RunCombine(cmd.Context(), args, combine.Streams{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}, logger)
}
