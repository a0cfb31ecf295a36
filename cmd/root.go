package cmd

import (
	"context"
	"fmt"
	"os"

	"dirclip/pkg/config"
	"dirclip/pkg/logging"
	"dirclip/pkg/version"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// options are the parsed command-line flags.
type options struct {
	baseDir        string
	recursive      bool
	filter         string
	x11            bool
	noIgnore       bool
	exclude        []string
	ignoreFile     string
	globalExcludes bool
	maxSizeKB      int
	tree           bool
	output         string
	debug          bool
}

// NewRootCmd builds the dirclip command with flag defaults taken from d.
func NewRootCmd(d config.Defaults) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dirclip [base-dir]",
		Short: "Copy directory contents to clipboard",
		Long: `dirclip concatenates directory listings and file contents into a single
text blob and places it on the clipboard, ready to paste into a chat tool.

Files listed in .gitignore are left out unless --no-ignore is given.`,
		Example: `  dirclip -r -f '*.go'
  dirclip ./service --recursive --exclude 'testdata/' -o -`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(opts.debug, "dirclip", version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed("base-dir") {
					return fmt.Errorf("base directory given both as argument and --base-dir")
				}
				opts.baseDir = args[0]
			}
			return runCombine(cmd, opts, logging.Get())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.baseDir, "base-dir", "b", ".", "Base directory to start processing")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Recursively process subdirectories")
	flags.StringVarP(&opts.filter, "filter", "f", "", `Filter files by name pattern (e.g. "*.go")`)
	flags.BoolVarP(&opts.x11, "x11", "x", d.X11, "Use xsel instead of the system clipboard library")
	flags.BoolVar(&opts.noIgnore, "no-ignore", false, "Do not apply .gitignore rules")
	flags.StringArrayVarP(&opts.exclude, "exclude", "e", nil, "Exclude paths matching a gitignore-style pattern (repeatable)")
	flags.StringVar(&opts.ignoreFile, "ignore-file", d.IgnoreFile, "Additional ignore file in .gitignore syntax")
	flags.BoolVar(&opts.globalExcludes, "global-excludes", d.GlobalExcludes, "Also apply the global git excludes file (core.excludesFile)")
	flags.IntVar(&opts.maxSizeKB, "max-size", d.MaxFileSizeKB, "Skip files larger than this many KB (0 = no limit)")
	flags.BoolVarP(&opts.tree, "tree", "t", false, "Prepend a tree of the selected files")
	flags.StringVarP(&opts.output, "output", "o", "", "Output destination: '-' for stdout, a file path, or empty for the clipboard")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", d.Debug, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute loads user defaults, builds the root command and runs it through
// fang, which renders help, errors and --version.
func Execute(ctx context.Context) error {
	defaults, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return fang.Execute(
		ctx,
		NewRootCmd(defaults),
		fang.WithVersion(version.Get().Version),
		fang.WithoutManpage(),
	)
}
