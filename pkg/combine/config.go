// File: pkg/combine/config.go
package combine

import (
	"dirclip/pkg/clipboard"
	"dirclip/pkg/selector"
)

// Output destinations other than a file path.
const (
	OutputClipboard = ""  // Copy the snapshot to the clipboard.
	OutputStdout    = "-" // Print the snapshot on stdout.
)

// Arguments holds the configuration options for one snapshot run.
type Arguments struct {
	Selector      selector.Config  // Traversal configuration.
	Output        string           // OutputClipboard, OutputStdout, or a file path.
	X11           bool             // Pipe into xsel instead of the clipboard library.
	Tree          bool             // Prepend a tree summary of the selection.
	MaxFileSizeKB int              // Files larger than this are skipped; 0 disables the limit.
	Clipboard     clipboard.Writer // Overrides the writer chosen from X11 when set.
}

// BuildOptions controls how a selection is rendered.
type BuildOptions struct {
	Tree          bool
	MaxFileSizeKB int
}
